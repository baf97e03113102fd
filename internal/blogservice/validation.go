package blogservice

import (
	"github.com/sushihentaime/blogsite/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must be at most 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validateCategory(v *common.Validator, category string) {
	v.Check(v.CheckStringLength(category, 0, 50), "category", "must be at most 50 characters long")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
