package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverTaken(string) (bool, error) { return false, nil }

func validForm() UserForm {
	return UserForm{
		Username: "jdoe",
		Password: "abc123",
		Prenom:   "Jane",
		Nom:      "Doe",
		Courriel: "jane@example.com",
	}
}

func TestValidateArticle(t *testing.T) {
	tests := []struct {
		name       string
		titre      string
		date       string
		contenu    string
		wantFields []string
	}{
		{"valid", "Hello World", "2024-01-01", "text", nil},
		{"title at max length", strings.Repeat("a", 50), "2024-01-01", "text", nil},
		{"title too long", strings.Repeat("a", 51), "2024-01-01", "text", []string{"titre"}},
		{"title missing", "", "2024-01-01", "text", []string{"titre"}},
		{"content at max length", "Hello", "2024-01-01", strings.Repeat("a", 500), nil},
		{"content too long", "Hello", "2024-01-01", strings.Repeat("a", 501), []string{"contenu"}},
		{"content missing", "Hello", "2024-01-01", "", []string{"contenu"}},
		{"date wrong shape", "Hello", "01-01-2024", "text", []string{"date_publication"}},
		{"date not zero padded", "Hello", "2024-1-1", "text", []string{"date_publication"}},
		{"date shape only, no calendar check", "Hello", "2024-99-99", "text", nil},
		{"everything wrong", "", "bad", "", []string{"titre", "date_publication", "contenu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateArticle(tt.titre, tt.date, tt.contenu)

			assert.Equal(t, len(tt.wantFields) == 0, v.IsValid())
			assert.Len(t, v.Errors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, v.Errors, field)
			}
		})
	}
}

func TestValidateArticleUpdate_IgnoresDate(t *testing.T) {
	v := ValidateArticleUpdate("Hello", "text")
	assert.True(t, v.IsValid())

	v = ValidateArticleUpdate("", "")
	assert.Contains(t, v.Errors, "titre")
	assert.Contains(t, v.Errors, "contenu")
}

func TestValidateSearch(t *testing.T) {
	assert.True(t, ValidateSearch("ello").IsValid())
	assert.True(t, ValidateSearch("abc").IsValid())
	assert.False(t, ValidateSearch("ab").IsValid())
	assert.False(t, ValidateSearch("").IsValid())
}

func TestValidateNewUser_Valid(t *testing.T) {
	v, err := ValidateNewUser(validForm(), neverTaken)
	require.NoError(t, err)
	assert.True(t, v.IsValid())
	assert.Empty(t, v.Errors)
}

func TestValidateNewUser_FieldBounds(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*UserForm)
		wantField string
	}{
		{"username too short", func(f *UserForm) { f.Username = "ab" }, "username"},
		{"username too long", func(f *UserForm) { f.Username = strings.Repeat("a", 26) }, "username"},
		{"password too short", func(f *UserForm) { f.Password = "ab" }, "password"},
		{"password too long", func(f *UserForm) { f.Password = strings.Repeat("a", 26) }, "password"},
		{"nom too short", func(f *UserForm) { f.Nom = "Ng" }, "nom"},
		{"nom too long", func(f *UserForm) { f.Nom = strings.Repeat("a", 21) }, "nom"},
		{"prenom too short", func(f *UserForm) { f.Prenom = "Al" }, "prenom"},
		{"courriel missing", func(f *UserForm) { f.Courriel = "" }, "courriel"},
		{"courriel too long", func(f *UserForm) { f.Courriel = strings.Repeat("a", 95) + "@example.com" }, "courriel"},
		{"courriel no domain dot", func(f *UserForm) { f.Courriel = "a@b" }, "courriel"},
		{"photo not a png", func(f *UserForm) { f.Photo = []byte("GIF89a") }, "photo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			v, err := ValidateNewUser(form, neverTaken)
			require.NoError(t, err)
			assert.False(t, v.IsValid())
			assert.Contains(t, v.Errors, tt.wantField)
		})
	}
}

func TestValidateNewUser_EmailBoundary(t *testing.T) {
	form := validForm()
	form.Courriel = "a@b.c"

	v, err := ValidateNewUser(form, neverTaken)
	require.NoError(t, err)
	assert.True(t, v.IsValid())
}

func TestValidateNewUser_UsernameTaken(t *testing.T) {
	v, err := ValidateNewUser(validForm(), func(string) (bool, error) { return true, nil })
	require.NoError(t, err)
	assert.Equal(t, "Ce nom d'utilisateur existe déjà", v.Errors["username"])
}

func TestValidateNewUser_SkipsLookupWhenUsernameInvalid(t *testing.T) {
	form := validForm()
	form.Username = "ab"

	called := false
	v, err := ValidateNewUser(form, func(string) (bool, error) {
		called = true
		return false, nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Contains(t, v.Errors, "username")
}

func TestValidateNewUser_LookupFailure(t *testing.T) {
	_, err := ValidateNewUser(validForm(), func(string) (bool, error) {
		return false, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestValidateUserUpdate_BlankPasswordAllowed(t *testing.T) {
	form := validForm()
	form.Username = ""
	form.Password = ""

	v := ValidateUserUpdate(form)
	assert.True(t, v.IsValid())
}

func TestValidateUserUpdate_ShortPasswordRejected(t *testing.T) {
	form := validForm()
	form.Password = "ab"

	v := ValidateUserUpdate(form)
	assert.Contains(t, v.Errors, "password")
}

func TestIsValidPNG(t *testing.T) {
	assert.True(t, IsValidPNG(nil), "absent photo is valid")
	assert.True(t, IsValidPNG([]byte{}), "empty photo is valid")
	assert.True(t, IsValidPNG([]byte("\x89PNG\r\n\x1a\nrest")))
	assert.False(t, IsValidPNG([]byte("GIF89a")))
	assert.False(t, IsValidPNG([]byte("\x89PN")), "truncated signature")
}
