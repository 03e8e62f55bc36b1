package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingFields(t *testing.T) {
	names := []string{"name", "email", "role"}

	missing := MissingFields(names, map[string]string{
		"name":  "A",
		"email": "a@b.com",
		"role":  "eng",
	})
	require.Empty(t, missing)

	missing = MissingFields(names, map[string]string{
		"name": "A",
		"role": "",
	})
	require.Equal(t, []string{"email", "role"}, missing)
}

func TestEmail(t *testing.T) {
	for _, ok := range []string{"a@b.com", "first.last@sub.domain.org", "x+tag@y.co"} {
		require.True(t, Email(ok), ok)
	}
	for _, bad := range []string{"", "not-an-email", "a@b", "a b@c.com", "a@@b.com", "a@b.", "@b.com"} {
		require.False(t, Email(bad), bad)
	}
}

func TestEnum(t *testing.T) {
	allowed := []string{"low", "medium", "high", "urgent"}

	require.True(t, Enum("", allowed), "absent value is always valid")
	require.True(t, Enum("low", allowed))
	require.True(t, Enum("URGENT", allowed))
	require.True(t, Enum("MeDiUm", allowed))
	require.False(t, Enum("critical", allowed))
	require.False(t, Enum("lowest", allowed))
}

func TestDate(t *testing.T) {
	_, ok := Date("")
	require.True(t, ok, "absent value is valid")

	when, ok := Date("2026-10-01")
	require.True(t, ok)
	require.Equal(t, "2026-10-01", when.Format("2006-01-02"))

	when, ok = Date("2026-10-01T12:30:00Z")
	require.True(t, ok)
	require.Equal(t, 12, when.Hour())

	for _, bad := range []string{"not-a-date", "2026-13-40", "tomorrow"} {
		_, ok := Date(bad)
		require.False(t, ok, bad)
	}
}
