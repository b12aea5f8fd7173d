package captions

// Normalize corrige les chevauchements créés par la fusion : si la fin d'un
// cue dépasse le début du cue suivant (dans l'ordre d'alignement), elle est
// ramenée à ce début. Passe avant unique, seuls les voisins directs sont
// corrigés ; moins de 2 cues = rien à faire.
//
// La comparaison est numérique via Timestamp.Millis(), jamais une
// comparaison de chaînes avec ponctuation.
func Normalize(matched []MatchedCue) {
	for i := 0; i+1 < len(matched); i++ {
		next := matched[i+1]
		if matched[i].End.After(next.Start) {
			matched[i].End = next.Start
		}
	}
}
