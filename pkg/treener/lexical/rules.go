package lexical

import "regexp"

var (
	clockPattern  = regexp.MustCompile(`^\d{1,2}[:.]\d{2}(['’].*)?$`)
	symbolPattern = regexp.MustCompile(`^([$€£₺¥]\d[\d.,]*|\d[\d.,]*[$€£₺¥])(['’].*)?$`)
)

var (
	turkishMonths = []string{
		"ocak", "şubat", "mart", "nisan", "mayıs", "haziran",
		"temmuz", "ağustos", "eylül", "ekim", "kasım", "aralık",
	}
	turkishDays = []string{
		"pazartesi", "salı", "çarşamba", "perşembe", "cuma", "cumartesi", "pazar",
	}
	turkishCurrencies = []string{
		"tl", "ytl", "lira", "kuruş", "dolar", "avro", "euro", "sterlin",
		"mark", "frank", "yen", "ruble", "sent", "cent",
	}

	// Names that may carry an unmarked suffix ("dolarlık", "pazartesileri")
	// and are not the prefix of a common word.
	turkishMoneyPrefixes = []string{"dolar", "kuruş", "sterlin", "avro"}
	turkishTimePrefixes  = []string{
		"pazartesi", "çarşamba", "perşembe", "cumartesi",
		"şubat", "haziran", "temmuz", "ağustos", "eylül", "aralık",
	}

	englishMonths = []string{
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
	}
	englishDays = []string{
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}
	englishCurrencies = []string{
		"dollar", "dollars", "euro", "euros", "pound", "pounds", "cent", "cents",
		"yen", "usd", "eur", "gbp",
	}
)

// Turkish returns the predicates used for Turkish trees.
func Turkish() Predicates {
	timeNames := append(append([]string{}, turkishMonths...), turkishDays...)
	return Predicates{
		Honorific: rule{exact: set("bay", "bayan")}.predicate(),
		Organization: rule{
			exact: set("corp.", "inc.", "co", "ltd.", "a.ş.", "şti."),
		}.predicate(),
		Money: rule{
			exact:    set(turkishCurrencies...),
			prefixes: turkishMoneyPrefixes,
			patterns: []*regexp.Regexp{symbolPattern},
		}.predicate(),
		Time: rule{
			exact:    set(timeNames...),
			prefixes: turkishTimePrefixes,
			patterns: []*regexp.Regexp{clockPattern},
		}.predicate(),
	}
}

// English returns the predicates used for English trees.
func English() Predicates {
	timeNames := append(append([]string{}, englishMonths...), englishDays...)
	return Predicates{
		Honorific: rule{
			exact: set("mr", "mr.", "mrs", "mrs.", "ms", "ms.", "dr", "dr."),
		}.predicate(),
		Organization: rule{
			exact: set("corp.", "inc.", "co", "co.", "ltd.", "llc"),
		}.predicate(),
		Money: rule{
			exact:    set(englishCurrencies...),
			patterns: []*regexp.Regexp{symbolPattern},
		}.predicate(),
		Time: rule{
			exact:    set(timeNames...),
			patterns: []*regexp.Regexp{clockPattern},
		}.predicate(),
	}
}
