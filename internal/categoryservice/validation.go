package categoryservice

import (
	"github.com/sushihentaime/pressroom/internal/common"
)

func validateName(v *common.Validator, name string) {
	v.Check(name != "", "name", "must be provided")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	if slug != "" {
		v.Check(v.Matches(slug, common.SlugRX), "slug", "must be lowercase alphanumeric tokens separated by single hyphens")
	}
}
