package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// Timestamp représente un horodatage de cue au format "HH:MM:SS.mmm".
// On garde la forme texte telle quelle (elle est réécrite verbatim à la
// sérialisation) ; toute comparaison chronologique passe par Millis().
type Timestamp string

// nonDigit sert à retirer les séparateurs (":" ou ".") avant parsing.
var nonDigit = regexp.MustCompile(`[^0-9]`)

// Millis convertit le timestamp en millisecondes depuis le début de la piste.
// Les séparateurs sont retirés puis les groupes fixes HH/MM/SS/mmm sont
// interprétés. Si la largeur n'est pas celle attendue (9 chiffres), on
// retombe sur la valeur numérique brute des chiffres concaténés : pour des
// timestamps de même largeur l'ordre chronologique reste préservé.
func (t Timestamp) Millis() int64 {
	digits := nonDigit.ReplaceAllString(string(t), "")
	if len(digits) != 9 {
		n, _ := strconv.ParseInt(digits, 10, 64)
		return n
	}
	h, _ := strconv.ParseInt(digits[0:2], 10, 64)
	m, _ := strconv.ParseInt(digits[2:4], 10, 64)
	s, _ := strconv.ParseInt(digits[4:6], 10, 64)
	ms, _ := strconv.ParseInt(digits[6:9], 10, 64)
	return ((h*60+m)*60+s)*1000 + ms
}

// After renvoie true si t est strictement postérieur à other.
func (t Timestamp) After(other Timestamp) bool {
	return t.Millis() > other.Millis()
}

func (t Timestamp) String() string {
	return string(t)
}

// SubSource représente la provenance d'une piste de sous-titres.
// user = fournie par l'auteur de la vidéo
// auto = générée automatiquement par la plateforme
type SubSource string

const (
	SubSourceUnknown SubSource = "unknown"
	SubSourceUser    SubSource = "user"
	SubSourceAuto    SubSource = "auto"
)

// ParseSubSource : de la chaîne de config à la constante SubSource,
// retourne une erreur si la valeur est inconnue.
func ParseSubSource(s string) (SubSource, error) {
	switch s {
	case "user":
		return SubSourceUser, nil
	case "auto":
		return SubSourceAuto, nil
	default:
		return SubSourceUnknown, fmt.Errorf("source de sous-titres inconnue: %q", s)
	}
}

func (s SubSource) String() string {
	switch s {
	case SubSourceUser:
		return "user subtitles"
	case SubSourceAuto:
		return "auto captions"
	default:
		return "unknown subtitles"
	}
}
