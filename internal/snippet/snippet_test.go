package snippet

import (
	"strings"
	"testing"
)

func TestPicture_WithAVIF(t *testing.T) {
	got := Picture(Data{Base: "photo", IncludeAVIF: true})

	if n := strings.Count(got, `<img src="photo.jpg"`); n != 1 {
		t.Errorf("got %d JPEG img lines, want exactly 1\n%s", n, got)
	}
	if n := strings.Count(got, `<source srcset="photo.avif" type="image/avif">`); n != 1 {
		t.Errorf("got %d AVIF source lines, want exactly 1\n%s", n, got)
	}

	avif := strings.Index(got, `srcset="photo.avif"`)
	webp := strings.Index(got, `srcset="photo.webp"`)
	img := strings.Index(got, `<img src="photo.jpg"`)
	if !(avif < webp && webp < img) {
		t.Errorf("order wrong: avif=%d webp=%d img=%d\n%s", avif, webp, img, got)
	}
}

func TestPicture_WithoutAVIF(t *testing.T) {
	got := Picture(Data{Base: "photo"})

	if strings.Contains(got, "avif") {
		t.Errorf("snippet references AVIF without an AVIF file:\n%s", got)
	}
	if !strings.Contains(got, `<source srcset="photo.webp" type="image/webp">`) {
		t.Errorf("missing WEBP source:\n%s", got)
	}
	if !strings.Contains(got, `<img src="photo.jpg"`) {
		t.Errorf("missing JPEG fallback:\n%s", got)
	}
}

func TestPicture_CommentedPNGFallback(t *testing.T) {
	got := Picture(Data{Base: "photo"})

	if !strings.Contains(got, `<!-- <img src="photo.png"`) {
		t.Errorf("missing commented-out PNG reference:\n%s", got)
	}
}

func TestPicture_BasenamesOnly(t *testing.T) {
	got := Picture(Data{Base: "hero.banner", IncludeAVIF: true})

	if strings.Contains(got, "/") {
		t.Errorf("snippet must reference basenames only:\n%s", got)
	}
	if !strings.Contains(got, `srcset="hero.banner.avif"`) {
		t.Errorf("dotted basename mangled:\n%s", got)
	}
}

func TestImageSet_WithAVIF(t *testing.T) {
	got := ImageSet(Data{Base: "photo", IncludeAVIF: true})

	for _, want := range []string{
		`background-image: image-set(`,
		`url("photo.avif") type("image/avif"),`,
		`url("photo.webp") type("image/webp"),`,
		`url("photo.jpg") type("image/jpeg")`,
		`/* url("photo.png") type("image/png") */`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestImageSet_WithoutAVIF(t *testing.T) {
	got := ImageSet(Data{Base: "photo"})

	if strings.Contains(got, "avif") {
		t.Errorf("CSS references AVIF without an AVIF file:\n%s", got)
	}
	if !strings.Contains(got, `url("photo.webp") type("image/webp"),`) {
		t.Errorf("missing WEBP entry:\n%s", got)
	}
}

func TestImageSet_PlainFallbackFirst(t *testing.T) {
	got := ImageSet(Data{Base: "photo", IncludeAVIF: true})

	plain := strings.Index(got, `background-image: url("photo.jpg");`)
	set := strings.Index(got, "image-set(")
	if plain < 0 || set < 0 || plain > set {
		t.Errorf("plain url() fallback must precede image-set():\n%s", got)
	}
}
