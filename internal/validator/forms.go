package validator

import (
	"bytes"
)

// pngSignature is the fixed 8-byte header every PNG file starts with.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// UsernameTaken reports whether a username already exists in the store.
// Looking it up is the only validation rule that is not a pure function.
type UsernameTaken func(username string) (bool, error)

// UserForm carries the raw submitted fields of a user create/modify form.
// Photo holds the raw uploaded bytes, empty when no file was supplied.
type UserForm struct {
	Username string
	Password string
	Prenom   string
	Nom      string
	Courriel string
	Photo    []byte
}

func ValidateArticle(titre, datePublication, contenu string) *Validator {
	v := New()

	v.CheckLength(titre, 1, 50, "titre", "Le titre doit contenir entre 1 et 50 caractères.")
	v.CheckDate(datePublication, "date_publication", "Date de publication invalide.")
	v.CheckLength(contenu, 1, 500, "contenu", "Le contenu doit contenir de 1 à 500 caractères.")

	return v
}

// ValidateArticleUpdate covers the modify flow, where the publication date
// is immutable and not part of the form.
func ValidateArticleUpdate(titre, contenu string) *Validator {
	v := New()

	v.CheckLength(titre, 1, 50, "titre", "Le titre doit contenir entre 1 et 50 caractères.")
	v.CheckLength(contenu, 1, 500, "contenu", "Le contenu doit contenir de 1 à 500 caractères.")

	return v
}

func ValidateSearch(recherche string) *Validator {
	v := New()
	v.CheckLength(recherche, 3, 250, "recherche", "La recherche doit contenir au moins 3 caractères.")
	return v
}

// ValidateNewUser checks every field of a user creation form. The uniqueness
// lookup only runs when the username passes its length check; a lookup
// failure is a storage fault and is returned as-is.
func ValidateNewUser(form UserForm, taken UsernameTaken) (*Validator, error) {
	v := validateUserFields(form)

	if _, exists := v.Errors["username"]; !exists {
		isTaken, err := taken(form.Username)
		if err != nil {
			return nil, err
		}
		v.Check(!isTaken, "username", "Ce nom d'utilisateur existe déjà")
	}

	v.CheckLength(form.Password, 3, 25, "password", "Le password doit contenir de 3 à 25 caractères.")

	return v, nil
}

// ValidateUserUpdate covers the modify flow: the username is immutable and a
// blank password means "keep the current one", so both checks are skipped.
func ValidateUserUpdate(form UserForm) *Validator {
	v := New()

	if form.Password != "" {
		v.CheckLength(form.Password, 3, 25, "password", "Le password doit contenir de 3 à 25 caractères.")
	}

	v.CheckLength(form.Nom, 3, 20, "nom", "Le nom doit contenir entre 3 et 20 caractères.")
	v.CheckLength(form.Prenom, 3, 20, "prenom", "Le prenom doit contenir de 3 à 20 caractères.")
	checkCourriel(v, form.Courriel)
	v.Check(IsValidPNG(form.Photo), "photo", "La photo de profil doit être une image png valide.")

	return v
}

func validateUserFields(form UserForm) *Validator {
	v := New()

	v.CheckLength(form.Username, 3, 25, "username", "Le username doit contenir entre 3 et 25 caractères.")
	v.CheckLength(form.Nom, 3, 20, "nom", "Le nom doit contenir entre 3 et 20 caractères.")
	v.CheckLength(form.Prenom, 3, 20, "prenom", "Le prenom doit contenir de 3 à 20 caractères.")
	checkCourriel(v, form.Courriel)
	v.Check(IsValidPNG(form.Photo), "photo", "La photo de profil doit être une image png valide.")

	return v
}

func checkCourriel(v *Validator, courriel string) {
	v.CheckLength(courriel, 1, 100, "courriel", "Le courriel doit avoir moins de 100 caractères.")
	if _, exists := v.Errors["courriel"]; !exists {
		v.CheckEmail(courriel, "courriel", "Le courriel doit avoir le format exemple@hotmail.com.")
	}
}

// IsValidPNG reports whether data is an acceptable profile photo: either no
// photo at all, or bytes starting with the PNG signature. Only the header is
// inspected, the rest of the stream is stored as-is.
func IsValidPNG(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	return bytes.HasPrefix(data, pngSignature)
}
