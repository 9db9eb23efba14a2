package usecases

type TextSanitizer interface {
	StripTags(input string) string
}
