package generators

import (
	"encoding/xml"
	"errors"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/blogbuilder/builder/config"
	"github.com/Kush-Singh-26/blogbuilder/builder/linker"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/testutil"
)

func samplePosts() []*models.Document {
	mk := func(source, shortlink string, created time.Time) *models.Document {
		d := models.NewDocument(source, models.KindBlogPost)
		d.Title = source
		d.CreatedAt = created
		d.ShortLink = shortlink
		d.Body = template.HTML(`<p><a href="about.html">about</a> <a href="https://example.org">ext</a></p>`)
		return d
	}
	posts, _ := linker.Order([]*models.Document{
		mk("2015/zombie.md", "https://exam.pl/7", time.Date(2015, 10, 31, 0, 0, 0, 0, time.UTC)),
		mk("2016/cupcake.md", "https://exam.pl/3", time.Date(2016, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	return posts
}

func TestGenerateFeed(t *testing.T) {
	destFs := afero.NewMemMapFs()
	cfg := config.Default()
	cfg.BaseURL = "https://example.com/"
	cfg.Title = "Test Blog"

	if err := GenerateFeed(destFs, "blog", cfg, samplePosts()); err != nil {
		t.Fatalf("GenerateFeed() error = %v", err)
	}

	data, err := afero.ReadFile(destFs, "blog/feed.xml")
	if err != nil {
		t.Fatalf("feed.xml not written: %v", err)
	}

	var rss models.Rss
	if err := xml.Unmarshal(data, &rss); err != nil {
		t.Fatalf("feed.xml is not valid XML: %v", err)
	}
	if rss.Version != "2.0" || rss.Channel.Title != "Test Blog" {
		t.Errorf("channel = %+v", rss.Channel)
	}
	if len(rss.Channel.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(rss.Channel.Items))
	}

	first := rss.Channel.Items[0]
	if first.Link != "https://example.com/2016/cupcake.html" {
		t.Errorf("first item link = %q", first.Link)
	}
	if !strings.Contains(first.Description, `href="https://example.com/about.html"`) {
		t.Errorf("description links not absolute: %q", first.Description)
	}
	if !strings.Contains(first.Description, `href="https://example.org"`) {
		t.Errorf("external link changed: %q", first.Description)
	}
	if first.Guid.IsPermaLink || len(first.Guid.Value) != 36 {
		t.Errorf("guid = %+v, want a UUID that is not a permalink", first.Guid)
	}
	if rss.Channel.LastBuildDate != first.PubDate {
		t.Errorf("lastBuildDate = %q, want newest post date %q", rss.Channel.LastBuildDate, first.PubDate)
	}
}

func TestGenerateFeed_Cap(t *testing.T) {
	destFs := afero.NewMemMapFs()
	cfg := config.Default()
	cfg.FeedPosts = 1

	if err := GenerateFeed(destFs, "blog", cfg, samplePosts()); err != nil {
		t.Fatalf("GenerateFeed() error = %v", err)
	}
	if n := strings.Count(testutil.ReadFile(t, destFs, "blog/feed.xml"), "<item>"); n != 1 {
		t.Errorf("feed has %d items, want 1", n)
	}
}

func TestGenerateFeed_Deterministic(t *testing.T) {
	a, b := afero.NewMemMapFs(), afero.NewMemMapFs()
	cfg := config.Default()
	_ = GenerateFeed(a, "blog", cfg, samplePosts())
	_ = GenerateFeed(b, "blog", cfg, samplePosts())

	if testutil.ReadFile(t, a, "blog/feed.xml") != testutil.ReadFile(t, b, "blog/feed.xml") {
		t.Error("feed differs between runs with identical input")
	}
}

func TestGenerateSitemap(t *testing.T) {
	destFs := afero.NewMemMapFs()
	page := models.NewDocument("about.md", models.KindPage)
	edited := models.NewDocument("imprint.md", models.KindPage)
	edited.ModifiedAt = time.Date(2017, 5, 4, 0, 0, 0, 0, time.UTC)

	err := GenerateSitemap(destFs, "blog", "https://example.com", samplePosts(), []*models.Document{page, edited})
	if err != nil {
		t.Fatalf("GenerateSitemap() error = %v", err)
	}

	var set models.UrlSet
	if err := xml.Unmarshal([]byte(testutil.ReadFile(t, destFs, "blog/sitemap.xml")), &set); err != nil {
		t.Fatalf("sitemap.xml is not valid XML: %v", err)
	}

	want := []models.Url{
		{Loc: "https://example.com/", LastMod: "2016-03-01"},
		{Loc: "https://example.com/2016/cupcake.html", LastMod: "2016-03-01"},
		{Loc: "https://example.com/2015/zombie.html", LastMod: "2015-10-31"},
		{Loc: "https://example.com/about.html"},
		{Loc: "https://example.com/imprint.html", LastMod: "2017-05-04"},
	}
	if len(set.Urls) != len(want) {
		t.Fatalf("len(urls) = %d, want %d", len(set.Urls), len(want))
	}
	for i := range want {
		if set.Urls[i] != want[i] {
			t.Errorf("urls[%d] = %+v, want %+v", i, set.Urls[i], want[i])
		}
	}
}

func TestGenerateShortener(t *testing.T) {
	destFs := afero.NewMemMapFs()

	if err := GenerateShortener(destFs, "blog", "https://example.com/", samplePosts()); err != nil {
		t.Fatalf("GenerateShortener() error = %v", err)
	}

	script := testutil.ReadFile(t, destFs, "blog/goto.php")
	want := "case \"3\": redirect(\"https://example.com/2016/cupcake.html\");\n" +
		"case \"7\": redirect(\"https://example.com/2015/zombie.html\");"
	if !strings.Contains(script, want) {
		t.Errorf("goto.php missing redirects:\n%s", script)
	}
	if n := strings.Count(script, "case \""); n != 2 {
		t.Errorf("goto.php has %d cases, want 2", n)
	}
	if strings.Contains(script, "$$URLS$$") {
		t.Error("marker was not replaced")
	}
}

func TestShortID(t *testing.T) {
	withLink := models.NewDocument("a.md", models.KindBlogPost)
	withLink.ShortLink = "https://exam.pl/goto.php?id=42"
	if got := ShortID(withLink); got != "goto.php?id=42" {
		t.Errorf("ShortID() = %q", got)
	}

	plain := models.NewDocument("2016/a.md", models.KindBlogPost)
	id := ShortID(plain)
	if len(id) != 8 || id != ShortID(models.NewDocument("2016/a.md", models.KindBlogPost)) {
		t.Errorf("fallback ShortID() = %q, want 8 stable hex characters", id)
	}
}

func TestRedirectCases_Escaping(t *testing.T) {
	quoted := models.NewDocument("2016/a.md", models.KindBlogPost)
	quoted.ShortLink = `https://exam.pl/x"$y`
	trailing := models.NewDocument("2016/b.md", models.KindBlogPost)
	trailing.ShortLink = "https://exam.pl/"

	got := RedirectCases("https://example.com", []*models.Document{quoted, trailing})

	if !strings.Contains(got, `case "x\"\$y": redirect("https://example.com/2016/a.html");`) {
		t.Errorf("id not escaped for PHP:\n%s", got)
	}
	if id := ShortID(trailing); len(id) != 8 {
		t.Errorf("ShortID() of a link ending in / = %q, want the hash fallback", id)
	}
	if strings.Contains(got, `case "":`) {
		t.Errorf("empty case label generated:\n%s", got)
	}
}

func TestGenerateShortener_WriteError(t *testing.T) {
	err := GenerateShortener(afero.NewReadOnlyFs(afero.NewMemMapFs()), "blog", "https://example.com/", samplePosts())

	var shortErr *ShortenerError
	if !errors.As(err, &shortErr) {
		t.Fatalf("GenerateShortener() error = %v, want *ShortenerError", err)
	}
}
