package evaluator

// Canonicalisation drops suits for rank-only evaluators and pads short hands
// with 'X' when padding is required; the tables below give the per-id
// defaults for that mechanism. A TypeConfig JSON file may set
// rank_only/padding_required/hand_size explicitly, but when it omits them
// (or sets a flag to false) the registry falls back to these defaults so existing evaluation-type
// files don't all need updating to carry fields implied by their id.

// rankOnlyDefaults lists evaluation-type ids that drop suit information
// during canonicalisation: pip-count games and "football" (low total wins)
// variants, where only the rank sequence matters.
var rankOnlyDefaults = map[string]bool{
	"49":              true,
	"58":              true,
	"6":               true,
	"zero":            true,
	"21":              true,
	"zero_6":          true,
	"21_6":            true,
	"low_pip_6_cards": true,
	"football":        true,
}

// paddedDefaults lists ids whose hand size can be satisfied by fewer than
// HandSize cards, padded with 'X' so every canonical string for that type
// is the same length regardless of how many cards were actually available
// (used by the 6-card low pip games, which accept 4- or 5-card hands).
var paddedDefaults = map[string]bool{
	"low_pip_6_cards": true,
	"49":              true,
	"6":               true,
}

// handSizeDefaults gives the required hand size for ids a TypeConfig file
// doesn't specify explicitly.
var handSizeDefaults = map[string]int{
	"high":             5,
	"a5_low":           5,
	"27_low":           5,
	"badugi":           4,
	"hidugi":           4,
	"36card_ffh_high":  5,
	"20card_high":      5,
	"one_card_low_spade": 1,
	"low_pip_6_cards":  6,
}

// applyDefaults fills zero-valued TypeConfig fields from the tables above,
// keyed by the config's id. An explicit hand_size wins; rank_only and
// padding_required can only be turned on explicitly, since a false value
// is indistinguishable from an omitted one.
func applyDefaults(cfg TypeConfig) TypeConfig {
	if !cfg.RankOnly && rankOnlyDefaults[cfg.ID] {
		cfg.RankOnly = true
	}
	if !cfg.PaddingRequired && paddedDefaults[cfg.ID] {
		cfg.PaddingRequired = true
	}
	if cfg.HandSize == 0 {
		if sz, ok := handSizeDefaults[cfg.ID]; ok {
			cfg.HandSize = sz
		}
	}
	return cfg
}
