package captions

// Process enchaîne le pipeline complet sur un blob de sous-titres brut :
// découpage (+ dédoublonnage des lignes), alignement, attribution des ids,
// normalisation des timestamps.
//
// Une entrée vide ou non parsable donne un Result vide, pas une erreur :
// le contenu malformé dégrade la sortie, il ne fait jamais échouer l'appel.
func Process(raw string) Result {
	header, cues, queue := SplitCues(raw)
	matched := Align(cues, queue)
	Normalize(matched)
	return Result{
		Header:  header,
		Cues:    cues,
		Matched: matched,
	}
}

// SubtitleStr renvoie le texte canonique du résultat.
func (r Result) SubtitleStr() string {
	return Serialize(r.Header, r.Matched)
}
