package captions

// Align consomme la queue des lignes uniques et produit un MatchedCue par
// ligne encore en attente.
//
// Pour chaque ligne L en tête de queue :
//   - on collecte tous les cues source contenant L (dans l'ordre source) ;
//   - le dernier est le plus complet (les captions roulants accumulent les
//     lignes de cue en cue), c'est lui qu'on retient ;
//   - son Start est réécrit avec celui du premier match : le moment où L est
//     apparue à l'écran pour la première fois ;
//   - toutes les lignes du cue retenu sont retirées de la queue, elles sont
//     désormais représentées.
//
// Une ligne qu'aucun cue ne contient est un défaut de données : elle est
// simplement abandonnée, pas une erreur. L'ordre de sortie est l'ordre de
// première rencontre des lignes, pas l'ordre chronologique.
func Align(cues []Cue, queue *LineQueue) []MatchedCue {
	var matched []MatchedCue

	for !queue.Empty() {
		target, _ := queue.Peek()

		first, last, found := findMatches(cues, target)
		if !found {
			// ligne orpheline : on l'abandonne et on continue
			queue.PopFront()
			continue
		}

		chosen := MatchedCue{
			Start: first.Start,
			End:   last.End,
			Lines: append([]string(nil), last.Lines...),
		}
		for _, line := range chosen.Lines {
			queue.Remove(line)
		}
		matched = append(matched, chosen)
	}

	assignIDs(matched)
	return matched
}

// findMatches renvoie le premier et le dernier cue contenant line,
// dans l'ordre source.
func findMatches(cues []Cue, line string) (first, last Cue, found bool) {
	for _, cue := range cues {
		if !cue.ContainsLine(line) {
			continue
		}
		if !found {
			first = cue
			found = true
		}
		last = cue
	}
	return first, last, found
}

// assignIDs attribue les ids séquentiels 1..N dans l'ordre d'alignement.
func assignIDs(matched []MatchedCue) {
	for i := range matched {
		matched[i].ID = i + 1
	}
}
