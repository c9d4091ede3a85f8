package models

type Article struct {
	ID              string `json:"id" db:"id"`
	Titre           string `json:"titre" db:"titre"`
	Auteur          string `json:"auteur" db:"auteur"`
	DatePublication string `json:"date_publication" db:"date_publication"`
	Contenu         string `json:"contenu" db:"contenu"`
}

type User struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Salt         string  `json:"-" db:"salt"`
	Nom          string  `json:"nom" db:"nom"`
	Prenom       string  `json:"prenom" db:"prenom"`
	Courriel     string  `json:"courriel" db:"courriel"`
	Actif        bool    `json:"actif" db:"actif"`
	PicID        *string `json:"pic_id" db:"pic_id"`
}

// FullName is the denormalized author string stored on articles ("Prenom Nom").
func (u *User) FullName() string {
	return u.Prenom + " " + u.Nom
}
