package captions

import "strings"

// dedupWindow : une ligne est ignorée si elle est identique à l'une des 4
// dernières lignes acceptées. Ça supprime les répétitions immédiates des
// captions roulants tout en laissant passer un vrai dialogue qui se répète
// plus tard dans la vidéo.
const dedupWindow = 4

// LineQueue est l'ensemble ordonné des lignes uniques rencontrées pendant le
// découpage, dans leur ordre de première apparition. Le splitter le construit,
// l'aligneur le consomme destructivement ; c'est une valeur transmise
// explicitement, pas un champ partagé.
type LineQueue struct {
	lines []string
}

// Push ajoute line à la queue. Les lignes blanches sont ignorées, de même
// que les lignes identiques à l'une des dedupWindow dernières acceptées.
// Renvoie true si la ligne a été acceptée.
func (q *LineQueue) Push(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	recent := q.lines
	if len(recent) > dedupWindow {
		recent = recent[len(recent)-dedupWindow:]
	}
	for _, prev := range recent {
		if prev == line {
			return false
		}
	}
	q.lines = append(q.lines, line)
	return true
}

// Peek renvoie la première ligne en attente sans la retirer.
func (q *LineQueue) Peek() (string, bool) {
	if len(q.lines) == 0 {
		return "", false
	}
	return q.lines[0], true
}

// PopFront retire la première ligne en attente.
func (q *LineQueue) PopFront() {
	if len(q.lines) > 0 {
		q.lines = q.lines[1:]
	}
}

// Remove retire la première occurrence de line si elle est présente.
// Une ligne absente n'est pas une erreur (elle a pu être consommée par un
// match précédent).
func (q *LineQueue) Remove(line string) bool {
	for i, l := range q.lines {
		if l == line {
			q.lines = append(q.lines[:i], q.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Len renvoie le nombre de lignes en attente.
func (q *LineQueue) Len() int {
	return len(q.lines)
}

// Empty renvoie true si plus aucune ligne n'est en attente.
func (q *LineQueue) Empty() bool {
	return len(q.lines) == 0
}

// Lines renvoie une copie des lignes en attente (pour inspection/tests).
func (q *LineQueue) Lines() []string {
	out := make([]string, len(q.lines))
	copy(out, q.lines)
	return out
}
