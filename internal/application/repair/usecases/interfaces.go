package usecases

// TextSanitizer removes markup from customer and staff free text.
type TextSanitizer interface {
	StripTags(input string) string
}

func stripPtr(s TextSanitizer, v *string) *string {
	if v == nil {
		return nil
	}
	out := s.StripTags(*v)
	return &out
}
