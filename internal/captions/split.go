package captions

import (
	"regexp"
	"strings"

	"github.com/patrickprogramme/subalign/pkg/model"
)

// Motifs du format WebVTT-like produit par la plateforme :
// - timeRange : ligne "HH:MM:SS.mmm --> HH:MM:SS.mmm" (séparateurs
//   optionnels dans les groupes heure/minute/seconde, fraction fixe)
// - inlineStamp : marqueurs de karaoke "<HH:MM:SS.mmm>" dans le texte
// - inlineTag : balises d'emphase "<c>" / "</c>"
var (
	timeRangeRe   = regexp.MustCompile(`^([0-9]{2}:?){3}\.[0-9]{3} --> ([0-9]{2}:?){3}\.[0-9]{3}`)
	inlineStampRe = regexp.MustCompile(`<([0-9]{2}:?){3}\.[0-9]{3}>`)
	inlineTagRe   = regexp.MustCompile(`</?c>`)
	cueNumberRe   = regexp.MustCompile(`^[0-9]+$`)
)

// SplitCues découpe le texte brut en un en-tête + une séquence de cues, et
// construit au passage la queue des lignes uniques (voir LineQueue).
//
// Le premier bloc (avant la première ligne vide) est l'en-tête, transmis
// verbatim. Chaque bloc suivant devient un Cue : la ligne qui matche le
// motif de timestamps fixe Start/End, toute autre ligne est nettoyée de son
// markup inline puis ajoutée aux lignes du cue. Une ligne malformée est du
// texte comme un autre, jamais une erreur.
func SplitCues(raw string) (string, []Cue, *LineQueue) {
	queue := &LineQueue{}

	// normalisation : fins de ligne windows, puis lignes "presque vides"
	// (espace seul) qui casseraient le découpage par bloc
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\n \n", "\n")

	blocks := strings.Split(raw, "\n\n")
	header := blocks[0]

	var cues []Cue
	for _, block := range blocks[1:] {
		cues = append(cues, parseCue(block, queue))
	}
	return header, cues, queue
}

// parseCue parse un bloc individuel. Classificateur tolérant : chaque ligne
// est soit une ligne de timestamps, soit du texte.
func parseCue(block string, queue *LineQueue) Cue {
	var cue Cue
	for i, line := range strings.Split(block, "\n") {
		// identifiant de cue (bloc numéroté, typiquement notre propre
		// sortie re-parsée) : pas du texte
		if i == 0 && cueNumberRe.MatchString(line) {
			continue
		}
		if m := timeRangeRe.FindString(line); m != "" {
			parts := strings.SplitN(m, " --> ", 2)
			cue.Start = model.Timestamp(parts[0])
			cue.End = model.Timestamp(parts[1])
			continue
		}
		clean := inlineStampRe.ReplaceAllString(line, "")
		clean = inlineTagRe.ReplaceAllString(clean, "")
		cue.Lines = append(cue.Lines, clean)
		queue.Push(clean)
	}
	return cue
}
