// Package captions implémente le réalignement des sous-titres "roulants"
// (auto captions) : les cues successifs ré-affichent les lignes précédentes
// en y ajoutant les nouvelles. On reconstruit ici une piste propre : une
// seule occurrence de chaque ligne, des timestamps cohérents, et une
// sérialisation canonique.
//
// Le package est pur : pas d'I/O, pas d'état partagé entre invocations.
package captions

import (
	"github.com/patrickprogramme/subalign/pkg/model"
)

// Cue représente un bloc de sous-titre tel que lu dans le flux source.
type Cue struct {
	Start model.Timestamp
	End   model.Timestamp
	Lines []string
}

// HasTimestamps renvoie true si le bloc portait une ligne de timestamps.
// Un bloc sans timestamps est conservé tel quel par le splitter ;
// l'aligneur le tolère (il ne peut simplement produire aucun match utile).
func (c Cue) HasTimestamps() bool {
	return c.Start != "" && c.End != ""
}

// ContainsLine renvoie true si line figure telle quelle dans les lignes du cue.
func (c Cue) ContainsLine(line string) bool {
	for _, l := range c.Lines {
		if l == line {
			return true
		}
	}
	return false
}

// MatchedCue est un cue de sortie après alignement : une ligne unique y est
// représentée par le cue source le plus complet qui la contient, ancré sur
// le timestamp de sa première apparition.
type MatchedCue struct {
	// ID séquentiel 1..N, attribué après alignement ; définit l'ordre
	// canonique de sérialisation (ordre de première rencontre des lignes,
	// pas l'ordre chronologique).
	ID    int
	Start model.Timestamp
	End   model.Timestamp
	Lines []string
}

// Result est la sortie complète d'un traitement : en-tête d'origine,
// cues bruts parsés, et cues alignés/normalisés.
type Result struct {
	Header  string
	Cues    []Cue
	Matched []MatchedCue
}

// Empty renvoie true si le traitement n'a produit aucun cue aligné.
// Ce n'est pas une erreur : l'appelant décide si une piste vide est acceptable.
func (r Result) Empty() bool {
	return len(r.Matched) == 0
}
