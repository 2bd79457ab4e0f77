package renderer

import (
	"encoding/hex"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/zeebo/blake3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
)

// CategoryDir holds one generated page per category.
const CategoryDir = "category"

// Slug lower-cases name and replaces every run of characters other than
// letters and digits with a single "-".
func Slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return sb.String()
}

// Categories groups posts by case-folded category name. Posts keep their
// order inside a listing; listings are sorted by slug.
func Categories(posts []*models.Document, lang string) []models.CategoryListing {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	caser := cases.Title(tag, cases.NoLower)
	fold := cases.Fold()

	byKey := make(map[string]*models.CategoryListing)
	var keys []string

	for _, post := range posts {
		for _, name := range post.Categories {
			key := fold.String(name)
			if key == "" {
				continue
			}
			listing, ok := byKey[key]
			if !ok {
				listing = &models.CategoryListing{
					Name:  name,
					Title: caser.String(name),
				}
				byKey[key] = listing
				keys = append(keys, key)
			}
			// A post listing the same category twice in different spellings
			if n := len(listing.Posts); n > 0 && listing.Posts[n-1] == post {
				continue
			}
			listing.Posts = append(listing.Posts, post)
		}
	}

	for key, slug := range categorySlugs(keys) {
		listing := byKey[key]
		listing.Slug = slug
		listing.OutputPath = path.Join(CategoryDir, slug+".html")
	}

	listings := make([]models.CategoryListing, 0, len(keys))
	for _, key := range keys {
		listings = append(listings, *byKey[key])
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Slug < listings[j].Slug
	})
	return listings
}

// categorySlugs assigns every folded category name a unique file name. A
// name keeps its bare slug when it is the only one producing it, or when it
// already is that slug ("c" next to "c++"); the others get a hash suffix.
func categorySlugs(keys []string) map[string]string {
	shared := make(map[string]int, len(keys))
	for _, key := range keys {
		shared[Slug(key)]++
	}

	slugs := make(map[string]string, len(keys))
	for _, key := range keys {
		slug := Slug(key)
		switch {
		case slug == "":
			slug = categoryHash(key)
		case shared[slug] > 1 && slug != key:
			slug += "-" + categoryHash(key)
		}
		slugs[key] = slug
	}
	return slugs
}

func categoryHash(key string) string {
	sum := blake3.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}

// categoryPath returns the output path of the category page for name, as
// assigned by the last call to indexCategories.
func (r *Renderer) categoryPath(name string) string {
	key := cases.Fold().String(name)
	if p, ok := r.categoryPaths[key]; ok {
		return p
	}
	return path.Join(CategoryDir, categorySlugs([]string{key})[key]+".html")
}

// indexCategories records the category page of every category of posts so
// post templates can link to them before the pages are written.
func (r *Renderer) indexCategories(listings []models.CategoryListing) {
	r.categoryPaths = make(map[string]string, len(listings))
	fold := cases.Fold()
	for _, listing := range listings {
		r.categoryPaths[fold.String(listing.Name)] = listing.OutputPath
	}
}

// WriteCategoryPages writes one page per distinct post category.
func (r *Renderer) WriteCategoryPages(posts []*models.Document) ([]models.CategoryListing, error) {
	listings := Categories(posts, r.cfg.Language)
	r.indexCategories(listings)

	for i := range listings {
		listing := &listings[i]
		err := r.render(r.cfg.Templates.Category, listing.OutputPath, models.PageData{
			Title:    listing.Title,
			Posts:    listing.Posts,
			Category: listing,
			RootPath: models.RootPathFor(listing.OutputPath),
		})
		if err != nil {
			return nil, err
		}
	}

	if len(listings) > 0 {
		r.logger.Debug("Rendered category pages", "count", len(listings))
	}
	return listings, nil
}
