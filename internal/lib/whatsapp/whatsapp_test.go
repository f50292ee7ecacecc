package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{
			name:  "international with plus",
			phone: "+51987654321",
			want:  "51987654321",
		},
		{
			name:  "spaces and dashes",
			phone: "+51 987-654-321",
			want:  "51987654321",
		},
		{
			name:  "parentheses",
			phone: "(+51) 987654321",
			want:  "51987654321",
		},
		{
			name:  "digits only",
			phone: "51987654321",
			want:  "51987654321",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.phone))
		})
	}
}

func TestMessage_Variants(t *testing.T) {
	assert.Equal(t,
		"Hola María González, vi tu perfil en ProConnect, y me interesa contactarte para un proyecto de Diseño web.",
		Message("María González", "Diseño web", "ProConnect"))

	assert.Equal(t,
		"Hola María González, vi tu perfil en ProConnect, y me interesa contactarte para un proyecto.",
		Message("María González", "", "ProConnect"))

	assert.Equal(t,
		"Hola, vi tu perfil en ProConnect, y me interesa contactarte.",
		Message("", "", "ProConnect"))
}

func TestContactURL(t *testing.T) {
	raw := ContactURL("+51 987-654-321", "María González", "Diseño web", "ProConnect", "")

	assert.True(t, strings.HasPrefix(raw, "https://api.whatsapp.com/send?"))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "51987654321", q.Get("phone"))
	assert.Equal(t,
		"Hola María González, vi tu perfil en ProConnect, y me interesa contactarte para un proyecto de Diseño web.",
		q.Get("text"))
}

func TestContactURL_CustomMessage(t *testing.T) {
	raw := ContactURL("+51987654321", "María González", "", "ProConnect", "Hola, ¿está disponible?")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hola, ¿está disponible?", parsed.Query().Get("text"))
}
