package utils

import "testing"

func TestMakeLinksRelative(t *testing.T) {
	tests := []struct {
		name    string
		content string
		prefix  string
		want    string
	}{
		{
			name:    "absolute http link untouched",
			content: `<a href="http://x.com/a">`,
			prefix:  "../",
			want:    `<a href="http://x.com/a">`,
		},
		{
			name:    "absolute https link untouched",
			content: `<img src="https://x.com/a.png">`,
			prefix:  "../",
			want:    `<img src="https://x.com/a.png">`,
		},
		{
			name:    "relative href prefixed",
			content: `<a href="page.html">`,
			prefix:  "../../",
			want:    `<a href="../../page.html">`,
		},
		{
			name:    "href and src in one document",
			content: "<a href=\"2016/post.html\">x</a>\n<img alt=\"i\" src=\"images/image.jpg\">",
			prefix:  "../",
			want:    "<a href=\"../2016/post.html\">x</a>\n<img alt=\"i\" src=\"../images/image.jpg\">",
		},
		{
			name:    "other schemes and fragments untouched",
			content: `<a href="mailto:me@example.com"><a href="#top"><a href="//cdn.example.com/x.js">`,
			prefix:  "../",
			want:    `<a href="mailto:me@example.com"><a href="#top"><a href="//cdn.example.com/x.js">`,
		},
		{
			name:    "unterminated attribute passed through",
			content: `<a href="page.html>broken`,
			prefix:  "../",
			want:    `<a href="page.html>broken`,
		},
		{
			name:    "single quoted attribute passed through",
			content: `<a href='page.html'>`,
			prefix:  "../",
			want:    `<a href='page.html'>`,
		},
		{
			name:    "srcset and data-href untouched",
			content: `<img srcset="a.png 2x"><div data-href="x.html">`,
			prefix:  "../",
			want:    `<img srcset="a.png 2x"><div data-href="x.html">`,
		},
		{
			name:    "site absolute link in raw html",
			content: `<a href="/2016/post.html"><img src="/images/a.svg">`,
			prefix:  "../../",
			want:    `<a href="../../2016/post.html"><img src="../../images/a.svg">`,
		},
		{
			name:    "empty prefix is a no-op",
			content: `<a href="page.html">`,
			prefix:  "",
			want:    `<a href="page.html">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeLinksRelative(tt.content, tt.prefix); got != tt.want {
				t.Errorf("MakeLinksRelative() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMakeLinksAbsolute(t *testing.T) {
	content := `<p><a href="2016/post.html">p</a> <img src="/images/a.jpg"> <a href="https://other.org/">o</a></p>`
	want := `<p><a href="https://example.com/2016/post.html">p</a> <img src="https://example.com/images/a.jpg"> <a href="https://other.org/">o</a></p>`

	for _, base := range []string{"https://example.com", "https://example.com/"} {
		if got := MakeLinksAbsolute(content, base); got != want {
			t.Errorf("MakeLinksAbsolute(%q) = %q, want %q", base, got, want)
		}
	}
}
