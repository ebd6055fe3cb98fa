package carousel

import (
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
	"github.com/lehigh-university-libraries/swatchbook/internal/title"
)

// Render builds the view description for a state, its classification and
// the title of the selected image. It has no side effects.
func Render(s State, roles []Role, t title.Title) models.View {
	v := models.View{
		Current: s.Current,
		Thumbs:  make([]models.Thumbnail, 0, len(s.Items)),
	}

	img, ok := s.Selected()
	if !ok {
		v.Empty = true
		v.Current = 0
		return v
	}

	v.Title = models.ViewTitle{Main: t.Main, Sub: t.Sub}
	v.Preview = models.Preview{
		Src:    img.Room,
		Swatch: img.Swatch,
	}
	if img.UsesFallback() {
		v.Preview.Src = img.Swatch
		v.Preview.Fallback = true
	}

	for i, item := range s.Items {
		role := RoleFar
		if i < len(roles) {
			role = roles[i]
		}
		v.Thumbs = append(v.Thumbs, models.Thumbnail{
			Index: i,
			Name:  item.Name,
			Src:   item.Swatch,
			Role:  string(role),
		})
	}
	return v
}

// RenderState classifies s and formats the selected title before rendering
func RenderState(s State) models.View {
	var t title.Title
	if img, ok := s.Selected(); ok {
		t = title.Format(img.Name)
	}
	return Render(s, Classify(s.Current, len(s.Items)), t)
}

// PreviewFailed retargets a view whose room image failed to load at the
// swatch and raises the fallback indicator.
func PreviewFailed(v models.View) models.View {
	if v.Empty {
		return v
	}
	v.Preview.Src = v.Preview.Swatch
	v.Preview.Fallback = true
	return v
}
