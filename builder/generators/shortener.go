package generators

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"

	"github.com/Kush-Singh-26/blogbuilder/builder/assets"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

const ShortenerFile = "goto.php"

// ShortenerError is reported but does not fail the build.
type ShortenerError struct {
	Err error
}

func (e *ShortenerError) Error() string {
	return fmt.Sprintf("url shortener: %v", e.Err)
}

func (e *ShortenerError) Unwrap() error {
	return e.Err
}

// phpString escapes a value for a double quoted PHP string literal.
var phpString = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

// ShortID is the text after the last "/" of the post's short link, or the
// first 8 hex characters of the BLAKE3 hash of its output path.
func ShortID(post *models.Document) string {
	if id := post.ShortLink[strings.LastIndex(post.ShortLink, "/")+1:]; id != "" {
		return id
	}
	sum := blake3.Sum256([]byte(post.OutputPath))
	return hex.EncodeToString(sum[:4])
}

// RedirectCases renders one PHP case line per post, in post order.
func RedirectCases(baseURL string, posts []*models.Document) string {
	baseURL = utils.EnsureTrailingSlash(baseURL)

	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, fmt.Sprintf(`case "%s": redirect("%s");`,
			phpString.Replace(ShortID(p)), phpString.Replace(baseURL+p.OutputPath)))
	}
	return strings.Join(lines, "\n")
}

// GenerateShortener fills the embedded goto.php template with one redirect
// per post.
func GenerateShortener(destFs afero.Fs, outputDir, baseURL string, posts []*models.Document) error {
	tmpl := assets.GotoTemplate()
	if !bytes.Contains(tmpl, []byte(assets.URLMarker)) {
		return &ShortenerError{Err: fmt.Errorf("template has no %s marker", assets.URLMarker)}
	}

	script := bytes.Replace(tmpl, []byte(assets.URLMarker), []byte(RedirectCases(baseURL, posts)), 1)

	path := filepath.Join(outputDir, ShortenerFile)
	if err := utils.WriteFileVFS(destFs, path, script); err != nil {
		return &ShortenerError{Err: err}
	}
	return nil
}
