package postservice

import (
	"github.com/google/uuid"

	"github.com/sushihentaime/pressroom/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	if slug != "" {
		v.Check(v.Matches(slug, common.SlugRX), "slug", "must be lowercase alphanumeric tokens separated by single hyphens")
	}
}

func validateExcerpt(v *common.Validator, excerpt string) {
	v.Check(v.CheckMaxChars(excerpt, 200), "excerpt", "must not be more than 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validatePublished(v *common.Validator, published *bool) {
	v.Check(published != nil, "published", "must be provided")
}

// validateCategoryID checks format only. Whether the category actually
// exists is enforced by the database foreign key on write.
func validateCategoryID(v *common.Validator, id string) {
	v.Check(id != "", "categoryId", "must be provided")
	if id != "" {
		_, err := uuid.Parse(id)
		v.Check(err == nil, "categoryId", "must be a valid UUID")
	}
}
