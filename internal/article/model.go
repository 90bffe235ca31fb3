// Package article is the bundled example target kind. It stands in for
// whatever domain entity a deployment attaches comments to; the comment
// subsystem only ever asks whether an article exists.
package article

import "gorm.io/gorm"

type Article struct {
	gorm.Model
	Title string `json:"title"`
	Body  string `json:"body"`
}
