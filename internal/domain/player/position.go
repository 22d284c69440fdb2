package player

// Position labels as reported by the sports-data provider.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionAttacker   = "Attacker"
	// PositionUnknown is the fallback when the provider reports no position.
	PositionUnknown = "Desconhecido"
)

// Roster bucket labels, in display order.
const (
	BucketGoalkeepers = "Goleiros"
	BucketDefenders   = "Defensores"
	BucketMidfielders = "Meio-campistas"
	BucketAttackers   = "Atacantes"
	BucketOthers      = "Outros"
)

// BucketOrder is the fixed display order of the roster groups.
var BucketOrder = []string{
	BucketGoalkeepers,
	BucketDefenders,
	BucketMidfielders,
	BucketAttackers,
	BucketOthers,
}

var bucketByPosition = map[string]string{
	PositionGoalkeeper: BucketGoalkeepers,
	PositionDefender:   BucketDefenders,
	PositionMidfielder: BucketMidfielders,
	PositionAttacker:   BucketAttackers,
}

var translationByPosition = map[string]string{
	PositionGoalkeeper: "Goleiro",
	PositionDefender:   "Defensor",
	PositionMidfielder: "Meio-campista",
	PositionAttacker:   "Atacante",
}

// BucketFor maps a provider position label to its roster bucket. Anything
// outside the four known labels lands in the Others bucket.
func BucketFor(position string) string {
	if bucket, ok := bucketByPosition[position]; ok {
		return bucket
	}
	return BucketOthers
}

// GroupByBucket assigns each player to exactly one bucket, preserving input
// order within a bucket. All five buckets are always present in the result.
func GroupByBucket(players []Summary) map[string][]Summary {
	grouped := make(map[string][]Summary, len(BucketOrder))
	for _, bucket := range BucketOrder {
		grouped[bucket] = []Summary{}
	}
	for _, p := range players {
		bucket := BucketFor(p.Position)
		grouped[bucket] = append(grouped[bucket], p)
	}
	return grouped
}

// TranslatePosition renders a provider position label in Portuguese.
// Unmapped labels translate to PositionUnknown.
func TranslatePosition(position string) string {
	if translated, ok := translationByPosition[position]; ok {
		return translated
	}
	return PositionUnknown
}
