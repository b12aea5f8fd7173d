package captions

import (
	"fmt"
	"strings"
)

// Serialize ré-assemble l'en-tête + les cues alignés en texte canonique :
//
//	<header>
//
//	<id>
//	<start> --> <end>
//	<lignes>
//
// Chaque cue est numéroté (id 1..N) et suivi d'une ligne vide. Le résultat
// re-découpé par SplitCues redonne les mêmes cues (round-trip structurel).
func Serialize(header string, matched []MatchedCue) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")

	for _, cue := range matched {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			cue.ID, cue.Start, cue.End, strings.Join(cue.Lines, "\n"))
	}
	return sb.String()
}
