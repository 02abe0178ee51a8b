package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Types lists the main product types.
var Types = NewTable("types",
	Term{"poubelle", "Poubelle"},
	Term{"corbeille", "Corbeille à papier"},
	Term{"bac", "Bac"},
	Term{"container", "Container"},
	Term{"poubelle-roulante", "Poubelle roulante"},
)

// Usages lists rooms and places of use.
var Usages = NewTable("usages",
	Term{"cuisine", "cuisine"},
	Term{"salle-de-bain", "salle de bain"},
	Term{"bureau", "bureau"},
	Term{"salon", "salon"},
	Term{"chambre", "chambre"},
	Term{"garage", "garage"},
	Term{"jardin", "jardin"},
	Term{"exterieur", "extérieur"},
	Term{"terrasse", "terrasse"},
	Term{"cave", "cave"},
	Term{"van", "van"},
	Term{"camping-car", "camping-car"},
	Term{"camping", "camping"},
	Term{"bateaux", "bateau"},
	Term{"restaurant", "restaurant"},
	Term{"hotel", "hôtel"},
	Term{"bureau-open-space", "open space"},
	Term{"ecole", "école"},
	Term{"hopital", "hôpital"},
	Term{"collectivites", "collectivités"},
	Term{"industrie", "industrie"},
)

// Functions lists waste types.
var Functions = NewTable("functions",
	Term{"ordures-menageres", "ordures ménagères"},
	Term{"tri-selectif", "tri sélectif"},
	Term{"recyclage-papier", "recyclage papier"},
	Term{"recyclage-plastique", "recyclage plastique"},
	Term{"recyclage-verre", "recyclage verre"},
	Term{"compost", "compost"},
	Term{"biodechets", "biodéchets"},
	Term{"carton", "carton"},
	Term{"metal", "métal"},
	Term{"alimentaire", "déchets alimentaires"},
	Term{"sanitaire", "déchets sanitaires"},
	Term{"couches", "couches bébé"},
	Term{"medical", "déchets médicaux"},
	Term{"electronique", "DEEE"},
)

// Materials lists bin materials.
var Materials = NewTable("materials",
	Term{"plastique", "plastique"},
	Term{"inox", "inox"},
	Term{"acier", "acier"},
	Term{"bambou", "bambou"},
	Term{"bois", "bois"},
	Term{"rotin", "rotin"},
	Term{"osier", "osier"},
	Term{"metal", "métal"},
	Term{"aluminium", "aluminium"},
	Term{"cuir", "cuir"},
	Term{"tissu", "tissu"},
	Term{"silicone", "silicone"},
	Term{"beton", "béton"},
	Term{"resine", "résine"},
	Term{"pierre", "pierre"},
	Term{"chrome", "chrome"},
	Term{"zinc", "zinc"},
)

// Colors lists colours.
var Colors = NewTable("colors",
	Term{"blanc", "blanc"},
	Term{"noir", "noir"},
	Term{"gris", "gris"},
	Term{"beige", "beige"},
	Term{"marron", "marron"},
	Term{"rouge", "rouge"},
	Term{"bleu", "bleu"},
	Term{"vert", "vert"},
	Term{"rose", "rose"},
	Term{"jaune", "jaune"},
	Term{"orange", "orange"},
	Term{"violet", "violet"},
	Term{"or", "or"},
	Term{"cuivre", "cuivre"},
	Term{"argent", "argent"},
	Term{"turquoise", "turquoise"},
	Term{"nude", "nude"},
	Term{"anthracite", "anthracite"},
	Term{"taupe", "taupe"},
	Term{"emeraude", "émeraude"},
)

// Volumes lists bin capacities.
var Volumes = litres("volumes",
	"1l", "2l", "3l", "5l", "7l", "8l", "10l", "12l", "15l", "16l", "20l", "25l",
	"30l", "40l", "50l", "60l", "70l", "80l", "90l", "100l", "120l", "140l", "180l",
	"240l", "360l", "600l", "1100l",
)

// ComparisonVolumes is the capacity subset that gets a comparison page.
var ComparisonVolumes = Volumes.Subset("10l", "20l", "30l", "50l", "80l", "120l")

// Mechanisms lists opening mechanisms.
var Mechanisms = NewTable("mechanisms",
	Term{"pedale", "à pédale"},
	Term{"automatique", "automatique"},
	Term{"capteur", "à capteur"},
	Term{"balancier", "à balancier"},
	Term{"push", "à couvercle push"},
	Term{"couvercle", "avec couvercle"},
	Term{"sans-couvercle", "sans couvercle"},
	Term{"rabattable", "à couvercle rabattable"},
	Term{"coulissant", "coulissant"},
)

// Compartments lists compartment counts for sorting bins.
var Compartments = NewTable("compartments",
	Term{"1-bac", "1 bac"},
	Term{"2-bacs", "2 bacs"},
	Term{"3-bacs", "3 bacs"},
	Term{"4-bacs", "4 bacs"},
	Term{"5-bacs", "5 bacs"},
)

// SortingUsages is the usage subset combined with compartment counts.
var SortingUsages = Usages.Subset("cuisine", "bureau", "garage", "exterieur", "collectivites")

// Styles lists design styles.
var Styles = NewTable("styles",
	Term{"design", "design"},
	Term{"minimaliste", "minimaliste"},
	Term{"scandinave", "scandinave"},
	Term{"industriel", "industriel"},
	Term{"vintage", "vintage"},
	Term{"retro", "rétro"},
	Term{"moderne", "moderne"},
	Term{"luxe", "luxe"},
	Term{"fantaisie", "fantaisie"},
	Term{"enfant", "pour enfant"},
	Term{"fun", "fun"},
	Term{"deco", "décoratif"},
	Term{"transparent", "transparent"},
	Term{"personnalisable", "personnalisable"},
)

// Features lists special characteristics.
var Features = NewTable("features",
	Term{"anti-odeur", "anti-odeur"},
	Term{"filtre-charbon", "filtre à charbon"},
	Term{"etanche", "étanche"},
	Term{"avec-roues", "avec roues"},
	Term{"empilable", "empilable"},
	Term{"compresseur", "avec compresseur"},
	Term{"demontable", "démontable"},
	Term{"silencieux", "silencieux"},
	Term{"verrouillable", "verrouillable"},
	Term{"mural", "mural"},
	Term{"encastrable", "encastrable"},
	Term{"pliant", "pliable"},
	Term{"suspendu", "suspendu"},
	Term{"portable", "portable"},
)

// Brands lists affiliate brands.
var Brands = NewTable("brands",
	Term{"brabantia", "Brabantia"},
	Term{"simplehuman", "simplehuman"},
	Term{"joseph-joseph", "Joseph Joseph"},
	Term{"ikea", "IKEA"},
	Term{"addis", "Addis"},
	Term{"curver", "Curver"},
	Term{"authentics", "Authentics"},
	Term{"wesco", "Wesco"},
	Term{"burak", "Burak"},
	Term{"rotho", "Rotho"},
	Term{"sulo", "Sulo"},
	Term{"vileda", "Vileda"},
	Term{"elletipi", "Elletipi"},
	Term{"umbra", "Umbra"},
	Term{"alessi", "Alessi"},
	Term{"magis", "Magis"},
)

// BrandUsages is the usage subset combined with brands.
var BrandUsages = Usages.Subset("cuisine", "bureau", "salle-de-bain", "exterieur")

// EnclosureMaterials lists bin-enclosure (cache-poubelle) materials.
var EnclosureMaterials = NewTable("enclosure_materials",
	Term{"bois", "bois"},
	Term{"metal", "métal"},
	Term{"pvc", "PVC"},
	Term{"resine", "résine"},
	Term{"beton", "béton"},
	Term{"osier", "osier"},
	Term{"rotin", "rotin"},
	Term{"bambou", "bambou"},
	Term{"acier", "acier"},
	Term{"grillage", "grillage"},
	Term{"parpaing", "parpaing"},
)

// EnclosureBins lists how many wheelie bins an enclosure holds.
var EnclosureBins = NewTable("enclosure_bins",
	Term{"1-bac", "1 bac"},
	Term{"2-bacs", "2 bacs"},
	Term{"3-bacs", "3 bacs"},
	Term{"4-bacs", "4 bacs"},
)

// EnclosureUsages lists outdoor places for enclosures. The order differs from
// Usages on purpose: it fixes insertion order of the usage × material pages.
var EnclosureUsages = NewTable("enclosure_usages",
	Term{"exterieur", "extérieur"},
	Term{"jardin", "jardin"},
	Term{"terrasse", "terrasse"},
	Term{"garage", "garage"},
)

// Accessories lists related products. Labels are lower case; titles
// capitalize them.
var Accessories = NewTable("accessories",
	Term{"sac-poubelle", "sac poubelle"},
	Term{"sac-compostable", "sac compostable"},
	Term{"sac-biodegradable", "sac biodégradable"},
	Term{"filtre-a-charbon", "filtre à charbon"},
	Term{"chariot-poubelle", "chariot poubelle"},
	Term{"support-poubelle", "support poubelle"},
	Term{"couvercle-remplacement", "couvercle de remplacement"},
	Term{"pedal-remplacement", "pédale de remplacement"},
	Term{"bac-interieur", "bac intérieur"},
	Term{"notice-tri", "notice de tri"},
	Term{"autocollant-tri", "autocollant tri sélectif"},
	Term{"seau-compost", "seau compost"},
	Term{"composteur", "composteur"},
	Term{"vermicomposteur", "vermicomposteur"},
	Term{"bac-collecte", "bac de collecte"},
)

// BagVolumes lists bin-bag capacities.
var BagVolumes = litres("bag_volumes",
	"10l", "15l", "20l", "25l", "30l", "35l", "40l", "45l", "50l",
	"60l", "70l", "80l", "100l", "110l", "130l", "150l", "240l",
)

// Cities lists the cities that get local collection pages.
var Cities = cities("cities",
	"paris", "lyon", "marseille", "toulouse", "nice", "nantes", "bordeaux",
	"strasbourg", "lille", "rennes", "reims", "saint-etienne", "toulon",
	"grenoble", "dijon", "angers", "nimes", "villeurbanne", "le-mans",
	"aix-en-provence", "clermont-ferrand", "brest", "limoges", "tours",
	"amiens", "metz", "besancon", "perpignan", "orleans", "rouen",
	"mulhouse", "caen", "nancy", "argenteuil", "montreuil", "versailles",
)

// litres builds a capacity table whose label is the upper-cased code.
func litres(name string, codes ...string) *Table {
	terms := make([]Term, len(codes))
	for i, c := range codes {
		terms[i] = Term{Code: c, Label: strings.ToUpper(c)}
	}
	return NewTable(name, terms...)
}

// cities builds a table whose label is the code with hyphens turned into
// spaces and every word title-cased ("saint-etienne" -> "Saint Etienne").
func cities(name string, codes ...string) *Table {
	caser := cases.Title(language.French)
	terms := make([]Term, len(codes))
	for i, c := range codes {
		terms[i] = Term{Code: c, Label: caser.String(strings.ReplaceAll(c, "-", " "))}
	}
	return NewTable(name, terms...)
}
