package extract

// Static vocabularies. Changing inference behavior means editing these
// tables; the resolvers in category.go and numeric.go stay untouched.
// Triggers are literal and case-sensitive, so each spelling (English,
// German, upper/lower case) is listed explicitly.

// VocabularyVersion is bumped whenever a table below changes meaning
const VocabularyVersion = "2"

var recordingSystems = FormatTable{
	".brw": "HDMEA",
	".bxr": "HDMEA",
	".dat": "MEA",
	".mcd": "MEA",
}

var cultureTypes = Vocabulary{
	{Label: "Neuro", Triggers: []string{"Neuro", "neuro", "NS", "ns"}},
	{Label: "Cardio", Triggers: []string{"Cardio", "cardio", "Kardio", "kardio", "myocytes", "HMZ"}},
}

var cellKinds = Vocabulary{
	{Label: "rat", Triggers: []string{"Rat neurons", "Rat cells", "Ratneuronen", "Rat", "rat"}},
	{Label: "hESC", Triggers: []string{"hESC", "human embryonic stem cells", "hES", "human"}},
	{Label: "iPSC", Triggers: []string{"iPSC", "induced pluripotent stem cells", "iPS", "induced"}},
	{Label: "Chicken", Triggers: []string{"Chicken", "chicken", "Hühn", "hühn"}},
}

var labs = Vocabulary{
	{Label: "BioMEMS", Triggers: []string{"BioMEMS", "BIOMEMS", "biomems", "Biomems"}},
	{Label: "Tokyo", Triggers: []string{"Tokyo", "tokyo", "Tokio", "tokio", "Japan", "japan"}},
	{Label: "GSI", Triggers: []string{"GSI", "gsi"}},
	{Label: "France", Triggers: []string{"France", "france", "French", "french"}},
}

var performers = Vocabulary{
	{Label: "Andreas Daus", Triggers: []string{"Andreas Daus", "Daus", "daus"}},
	{Label: "Christoph Nick", Triggers: []string{"Christoph Nick", "Nick", "nick"}},
	{Label: "Johannes Frieß", Triggers: []string{"Johannes Frieß", "Frieß", "frieß", "Friess", "friess"}},
	{Label: "Margot Mayer", Triggers: []string{"Margot Mayer", "Mayer", "mayer"}},
	{Label: "Philipp Steigerwald", Triggers: []string{"Philipp Steigerwald", "Steigerwald", "steigerwald"}},
	{Label: "Berit Körbitzer", Triggers: []string{"Berit Körbitzer", "Körbitzer", "körbitzer", "Koerbitzer"}},
	{Label: "Tim Köhler", Triggers: []string{"Tim Köhler", "Köhler", "köhler", "Koehler"}},
	{Label: "Steffen Künzinger", Triggers: []string{"Steffen Künzinger", "Künzinger", "künzinger", "Künziger", "künziger"}},
	{Label: "Pascal Rüde", Triggers: []string{"Pascal Rüde", "Rüde", "rüde"}},
	{Label: "Tobias Kraus", Triggers: []string{"Tobias Kraus", "Tobias", "Kraus", "kraus"}},
	{Label: "Manuel Ciba", Triggers: []string{"Manuel Ciba", "Ciba", "ciba"}},
	{Label: "Nahid Nafez", Triggers: []string{"Nahid Nafez", "Nafez", "nafez"}},
	{Label: "Oliver Smolin", Triggers: []string{"Oliver Smolin", "Smolin", "smolin"}},
	{Label: "Enes Aydin Furkan", Triggers: []string{"Enes Aydin Furkan", "Furkan", "furkan"}},
	{Label: "Melanie Jungblut", Triggers: []string{"Melanie Jungblut", "Jungblut"}},
	{Label: "Ismael Losano", Triggers: []string{"Ismael Losano", "Losano"}},
	{Label: "Nico Kück", Triggers: []string{"Nico Kück", "Kück"}},
	{Label: "Anja Heselide", Triggers: []string{"Anja Heselide", "Heselide"}},
	{Label: "Sebastian Gutsfeld", Triggers: []string{"Sebastian Gutsfeld", "Gutsfeld"}},
	{Label: "Simone Hufgard", Triggers: []string{"Simone Hufgard", "Hufgard"}},
	{Label: "Dennis Flachs", Triggers: []string{"Dennis Flachs", "Flachs"}},
	{Label: "Stefan Homes", Triggers: []string{"Stefan Homes", "Homes"}},
	{Label: "Christiane Thielemann", Triggers: []string{"Christiane Thielemann", "Thielemann"}},
	{Label: "Sebastian Allig", Triggers: []string{"Sebastian Allig", "Allig"}},
}

// performerLabs is the lab a performer works in when the path names none
var performerLabs = map[string]string{
	"Andreas Daus":          "BioMEMS",
	"Christoph Nick":        "BioMEMS",
	"Johannes Frieß":        "BioMEMS",
	"Margot Mayer":          "BioMEMS",
	"Philipp Steigerwald":   "BioMEMS",
	"Berit Körbitzer":       "BioMEMS",
	"Tim Köhler":            "BioMEMS",
	"Steffen Künzinger":     "BioMEMS",
	"Pascal Rüde":           "BioMEMS",
	"Tobias Kraus":          "BioMEMS",
	"Manuel Ciba":           "BioMEMS",
	"Nahid Nafez":           "BioMEMS",
	"Oliver Smolin":         "BioMEMS",
	"Enes Aydin Furkan":     "BioMEMS",
	"Melanie Jungblut":      "BioMEMS",
	"Ismael Losano":         "BioMEMS",
	"Nico Kück":             "BioMEMS",
	"Anja Heselide":         "BioMEMS",
	"Sebastian Gutsfeld":    "BioMEMS",
	"Simone Hufgard":        "BioMEMS",
	"Dennis Flachs":         "BioMEMS",
	"Stefan Homes":          "BioMEMS",
	"Christiane Thielemann": "BioMEMS",
	"Sebastian Allig":       "BioMEMS",
}

var drugs = Vocabulary{
	{Label: "Bicuculline", Triggers: []string{"Bicuculline", "bicuculline", "Bic", "bic"}},
	{Label: "Carbamazepine", Triggers: []string{"Carbamazepine", "carbamazepine", "Carba", "carba"}},
	{Label: "LSD", Triggers: []string{"LSD", "lsd"}},
	{Label: "Levetiracetam", Triggers: []string{"Levetiracetam", "levetiracetam", "lev"}},
	{Label: "Cisplatin", Triggers: []string{"Cisplatin", "cisplatin"}},
	{Label: "Tetrodotoxin", Triggers: []string{"Tetrodotoxin", "tetrodotoxin", "TTX"}},
}

var radiationFlag = Flag("Irradiated",
	"Radiation", "radiation", "Irradiation", "irradiation", "Bestrahlung", "bestrahlt", "aR", "a.R.",
)

var radiationTypes = Vocabulary{
	{Label: "X-ray", Triggers: []string{"X-ray", "x-ray", "Xray", "xray", "X-Ray", "Röntgen", "röntgen"}},
	{Label: "Carbon ions", Triggers: []string{"Carbon", "carbon", "Kohlenstoff", "C12", "12C"}},
	{Label: "Protons", Triggers: []string{"Proton", "proton"}},
	{Label: "Gamma", Triggers: []string{"Gamma", "gamma"}},
}

var stimulationFlag = Flag("Stimulated",
	"Stimulation", "stimulation", "Stimulus", "stimulus", "Stimuli", "stimuli", "Stim", "stim",
)

var controlFlag = Flag("Control",
	"Control", "control", "Kontrolle", "kontrolle", "Ctrl", "ctrl", "CTRL", "Sham", "sham",
)

var nanoparticleFlag = Flag("Nanoparticles",
	"Nanoparticle", "nanoparticle", "Nanopartikel", "nanopartikel", "AuNP", "NP_",
)

var laserFlag = Flag("Laser", "Laser", "laser", "LASER")

// Numeric rules. A chain is tried in order; the first one that finds a
// plausible number wins.

var drugDoseRules = NumericChain{
	NumericRule{
		Keyword:       `microM|micro M|muM|µM|μM|uM`,
		Unit:          "microM",
		CaseSensitive: true,
		Side:          SideBefore,
		Range:         Between(0, 10000),
		LeadingZero:   LeadingZeroDecimal,
	}.Compile(),
	NumericRule{
		Keyword:       `nM`,
		Unit:          "nM",
		CaseSensitive: true,
		Side:          SideBefore,
		Range:         Between(0, 100000),
		LeadingZero:   LeadingZeroDecimal,
	}.Compile(),
	NumericRule{
		Keyword:       `mM`,
		Unit:          "mM",
		CaseSensitive: true,
		Side:          SideBefore,
		Range:         Between(0, 1000),
		LeadingZero:   LeadingZeroDecimal,
	}.Compile(),
}

var radiationDoseRule = NumericRule{
	Keyword:     `Gy|Gray`,
	Unit:        "Gy",
	Side:        SideBoth,
	Range:       Closed(0, 100),
	LeadingZero: LeadingZeroDecimal,
	Format:      OutputWithUnitFloat,
}.Compile()

var pitchRules = NumericChain{
	NumericRule{
		Keyword:     `pitch`,
		Unit:        "µm",
		Side:        SideBoth,
		Range:       Between(0, 5000),
		LeadingZero: LeadingZeroReject,
	}.Compile(),
	NumericRule{
		Keyword:       `µm|μm|um`,
		Unit:          "µm",
		CaseSensitive: true,
		Side:          SideBefore,
		Range:         Between(0, 5000),
		LeadingZero:   LeadingZeroReject,
	}.Compile(),
}

var samplingRateRules = NumericChain{
	NumericRule{
		Keyword:     `kHz`,
		Side:        SideBefore,
		Range:       Between(0, 1e8),
		LeadingZero: LeadingZeroAccept,
		Scale:       1e3,
		Format:      OutputInt,
	}.Compile(),
	NumericRule{
		Keyword:     `Hz`,
		Side:        SideBefore,
		Range:       Between(0, 1e8),
		LeadingZero: LeadingZeroAccept,
		Format:      OutputInt,
	}.Compile(),
	NumericRule{
		Keyword:     `MHz`,
		Side:        SideBefore,
		Range:       Between(0, 1e8),
		LeadingZero: LeadingZeroAccept,
		Scale:       1e6,
		Format:      OutputInt,
	}.Compile(),
}

var electrodeRule = NumericRule{
	Keyword:     `electrodes?|elektroden?|channels?|kanäle`,
	Side:        SideBoth,
	Range:       Between(0, 65536),
	LeadingZero: LeadingZeroReject,
	Format:      OutputInt,
	Integer:     true,
}.Compile()

var divRule = NumericRule{
	Keyword:     `DIV`,
	Unit:        "DIV",
	Side:        SideBoth,
	Range:       Between(0, 60),
	LeadingZero: LeadingZeroReject,
	Format:      OutputInt,
	Integer:     true,
}.Compile()

var dapRule = NumericRule{
	Keyword:     `DAP`,
	Unit:        "DAP",
	Side:        SideBoth,
	Range:       Between(0, 60),
	LeadingZero: LeadingZeroReject,
	Format:      OutputInt,
	Integer:     true,
}.Compile()

const hoursKeyword = `(?:h|hours?|std)[ _-]{0,2}`

var timeBeforeRule = NumericRule{
	Keyword:     hoursKeyword + `(?:bR|b\.R\.|before|pre|vor)`,
	Unit:        "h",
	Side:        SideBefore,
	Range:       Closed(0, 1000),
	LeadingZero: LeadingZeroAccept,
}.Compile()

var timeAfterRule = NumericRule{
	Keyword:     hoursKeyword + `(?:aR|a\.R\.|after|post|nach)`,
	Unit:        "h",
	Side:        SideBefore,
	Range:       Closed(0, 1000),
	LeadingZero: LeadingZeroAccept,
}.Compile()

// DefaultDenylist marks paths that are not genuine recordings: trash,
// failed or aborted runs, operating-system and acquisition-software artifacts
var DefaultDenylist = []string{
	"$RECYCLE.BIN", "RECYCLER", "Recycle", "Trash", "trash", "Papierkorb", "papierkorb",
	"Error", "error", "ERROR", "Fehler", "fehler", "Aborted", "aborted", "Abbruch",
	"Thumbs.db", "desktop.ini", ".DS_Store", "__MACOSX", "/._", "\\._",
	"~$", ".tmp", ".TMP",
	"Program Files", "Programme", "BrainWave", "MC_Rack", "MC_DataTool",
}
