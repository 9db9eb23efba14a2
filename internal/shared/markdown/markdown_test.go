package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**Ticket** TKT-1 received\n\n<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>Ticket</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestService_StripTags(t *testing.T) {
	svc := NewService()

	tests := []struct {
		in   string
		want string
	}{
		{"cracked screen", "cracked screen"},
		{"<b>cracked</b> screen", "cracked screen"},
		{"  <img src=x onerror=alert(1)>battery & port ", "battery & port"},
		{"O'Brien", "O'Brien"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.StripTags(tt.in))
	}
}
