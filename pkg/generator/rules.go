package generator

import (
	c "seo-pages-go/pkg/catalog"
	t "seo-pages-go/pkg/taxonomy"
)

// DefaultRules returns the page rules in insertion order. Order matters:
// when two rules produce the same slug the earlier one keeps it.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "Type × Usage",
			Axes: []Axis{On("usage", t.Usages)},
			Pages: []PageTemplate{
				Page(c.CategoryTypeUsage, c.PriorityHigh, "Poubelle {{{usage}}}", "poubelle", "$usage"),
				Page(c.CategoryTypeUsage, c.PriorityMedium, "Corbeille {{{usage}}}", "corbeille", "$usage"),
			},
		},
		{
			Name: "Volumes",
			Axes: []Axis{On("volume", t.Volumes)},
			Pages: []PageTemplate{
				Page(c.CategoryVolume, c.PriorityHigh, "Poubelle {{{volume}}}", "poubelle", "$volume"),
				Page(c.CategoryVolume, c.PriorityLow, "Bac {{{volume}}}", "bac", "$volume"),
			},
		},
		{
			Name: "Volume × Usage",
			Axes: []Axis{On("volume", t.Volumes), On("usage", t.Usages)},
			Pages: []PageTemplate{
				Page(c.CategoryVolumeUsage, c.PriorityHigh, "Poubelle {{{volume}}} {{{usage}}}", "poubelle", "$volume", "$usage"),
			},
		},
		{
			Name: "Volume × Mécanisme",
			Axes: []Axis{On("volume", t.Volumes), On("mechanism", t.Mechanisms)},
			Pages: []PageTemplate{
				Page(c.CategoryVolumeMechanism, c.PriorityMedium, "Poubelle {{{volume}}} {{{mechanism}}}", "poubelle", "$volume", "$mechanism"),
			},
		},
		{
			Name: "Couleurs",
			Axes: []Axis{On("color", t.Colors)},
			Pages: []PageTemplate{
				Page(c.CategoryColor, c.PriorityMedium, "Poubelle {{{color}}}", "poubelle", "$color"),
				Page(c.CategoryColor, c.PriorityLow, "Corbeille {{{color}}}", "corbeille", "$color"),
			},
		},
		{
			Name: "Couleur × Usage",
			Axes: []Axis{On("color", t.Colors), On("usage", t.Usages)},
			Pages: []PageTemplate{
				Page(c.CategoryColorUsage, c.PriorityLow, "Poubelle {{{color}}} {{{usage}}}", "poubelle", "$color", "$usage"),
			},
		},
		{
			Name: "Couleur × Volume",
			Axes: []Axis{On("color", t.Colors), On("volume", t.Volumes)},
			Pages: []PageTemplate{
				Page(c.CategoryColorVolume, c.PriorityLow, "Poubelle {{{color}}} {{{volume}}}", "poubelle", "$color", "$volume"),
			},
		},
		{
			Name: "Matériaux",
			Axes: []Axis{On("material", t.Materials)},
			Pages: []PageTemplate{
				Page(c.CategoryMaterial, c.PriorityMedium, "Poubelle {{{material}}}", "poubelle", "$material"),
				Page(c.CategoryMaterial, c.PriorityLow, "Corbeille {{{material}}}", "corbeille", "$material"),
			},
		},
		{
			Name: "Matériau × Usage",
			Axes: []Axis{On("material", t.Materials), On("usage", t.Usages)},
			Pages: []PageTemplate{
				Page(c.CategoryMaterialUsage, c.PriorityMedium, "Poubelle {{{material}}} {{{usage}}}", "poubelle", "$material", "$usage"),
			},
		},
		{
			Name: "Matériau × Volume",
			Axes: []Axis{On("material", t.Materials), On("volume", t.Volumes)},
			Pages: []PageTemplate{
				Page(c.CategoryMaterialVolume, c.PriorityLow, "Poubelle {{{material}}} {{{volume}}}", "poubelle", "$material", "$volume"),
			},
		},
		{
			Name: "Matériau × Couleur",
			Axes: []Axis{On("material", t.Materials), On("color", t.Colors)},
			Pages: []PageTemplate{
				Page(c.CategoryMaterialColor, c.PriorityLow, "Poubelle {{{material}}} {{{color}}}", "poubelle", "$material", "$color"),
			},
		},
		{
			Name: "Mécanismes",
			Axes: []Axis{On("mechanism", t.Mechanisms)},
			Pages: []PageTemplate{
				Page(c.CategoryMechanism, c.PriorityHigh, "Poubelle {{{mechanism}}}", "poubelle", "$mechanism"),
			},
		},
		{
			Name: "Mécanisme × Usage",
			Axes: []Axis{On("mechanism", t.Mechanisms), On("usage", t.Usages)},
			Pages: []PageTemplate{
				Page(c.CategoryMechanismUsage, c.PriorityMedium, "Poubelle {{{mechanism}}} {{{usage}}}", "poubelle", "$mechanism", "$usage"),
			},
		},
		{
			Name: "Tri sélectif × Compartiments",
			Axes: []Axis{On("compartment", t.Compartments)},
			Pages: []PageTemplate{
				Page(c.CategorySortingCompartments, c.PriorityHigh, "Poubelle de tri sélectif {{{compartment}}}", "poubelle-tri", "$compartment"),
			},
			Nested: []Rule{{
				Axes: []Axis{On("usage", t.SortingUsages)},
				Pages: []PageTemplate{
					Page(c.CategorySortingCompartmentsUsage, c.PriorityHigh, "Poubelle tri sélectif {{{compartment}}} {{{usage}}}", "poubelle-tri", "$compartment", "$usage"),
				},
			}},
		},
		{
			Name: "Fonctions × Usage",
			Axes: []Axis{On("function", t.Functions)},
			Pages: []PageTemplate{
				Page(c.CategoryFunction, c.PriorityHigh, "Poubelle {{{function}}}", "poubelle", "$function"),
			},
			Nested: []Rule{
				{
					Axes: []Axis{On("usage", t.Usages)},
					Pages: []PageTemplate{
						Page(c.CategoryFunctionUsage, c.PriorityMedium, "Poubelle {{{function}}} {{{usage}}}", "poubelle", "$function", "$usage"),
					},
				},
				{
					Axes: []Axis{On("volume", t.Volumes)},
					Pages: []PageTemplate{
						Page(c.CategoryFunctionVolume, c.PriorityMedium, "Poubelle {{{function}}} {{{volume}}}", "poubelle", "$function", "$volume"),
					},
				},
			},
		},
		{
			Name: "Styles",
			Axes: []Axis{On("style", t.Styles)},
			Pages: []PageTemplate{
				Page(c.CategoryStyle, c.PriorityMedium, "Poubelle {{{style}}}", "poubelle", "$style"),
			},
			Nested: []Rule{
				{
					Axes: []Axis{On("usage", t.Usages)},
					Pages: []PageTemplate{
						Page(c.CategoryStyleUsage, c.PriorityLow, "Poubelle {{{style}}} {{{usage}}}", "poubelle", "$style", "$usage"),
					},
				},
				{
					Axes: []Axis{On("material", t.Materials)},
					Pages: []PageTemplate{
						Page(c.CategoryStyleMaterial, c.PriorityLow, "Poubelle {{{style}}} {{{material}}}", "poubelle", "$style", "$material"),
					},
				},
			},
		},
		{
			Name: "Caractéristiques",
			Axes: []Axis{On("feature", t.Features)},
			Pages: []PageTemplate{
				Page(c.CategoryFeature, c.PriorityMedium, "Poubelle {{{feature}}}", "poubelle", "$feature"),
			},
			Nested: []Rule{{
				Axes: []Axis{On("usage", t.Usages)},
				Pages: []PageTemplate{
					Page(c.CategoryFeatureUsage, c.PriorityLow, "Poubelle {{{feature}}} {{{usage}}}", "poubelle", "$feature", "$usage"),
				},
			}},
		},
		{
			Name: "Marques",
			Axes: []Axis{On("brand", t.Brands)},
			Pages: []PageTemplate{
				Page(c.CategoryBrand, c.PriorityMedium, "Poubelle {{{brand}}}", "poubelle", "$brand"),
				Page(c.CategoryBrandReview, c.PriorityMedium, "Avis {{{brand}}} — guide complet", "avis", "$brand"),
			},
			Nested: []Rule{{
				Axes: []Axis{On("usage", t.BrandUsages)},
				Pages: []PageTemplate{
					Page(c.CategoryBrandUsage, c.PriorityMedium, "Poubelle {{{brand}}} {{{usage}}}", "poubelle", "$brand", "$usage"),
				},
			}},
		},
		{
			Name: "Cache-poubelle",
			Pages: Literals(c.CategoryEnclosure, c.PriorityTop,
				Literal{"cache-poubelle", "Cache-poubelle"},
				Literal{"cache-poubelle-exterieur", "Cache-poubelle extérieur"},
				Literal{"cache-poubelle-jardin", "Cache-poubelle jardin"},
				Literal{"abri-poubelle", "Abri poubelle"},
				Literal{"abri-bac-roulant", "Abri bac roulant"},
			),
			Nested: []Rule{
				{
					Axes: []Axis{On("material", t.EnclosureMaterials)},
					Pages: []PageTemplate{
						Page(c.CategoryEnclosureMaterial, c.PriorityHigh, "Cache-poubelle {{{material}}}", "cache-poubelle", "$material"),
						Page(c.CategoryEnclosureMaterial, c.PriorityHigh, "Cache-poubelle extérieur {{{material}}}", "cache-poubelle-exterieur", "$material"),
						Page(c.CategoryEnclosureMaterial, c.PriorityHigh, "Abri poubelle {{{material}}}", "abri-poubelle", "$material"),
					},
				},
				{
					Axes: []Axis{On("bins", t.EnclosureBins)},
					Pages: []PageTemplate{
						Page(c.CategoryEnclosureBins, c.PriorityHigh, "Cache-poubelle {{{bins}}}", "cache-poubelle", "$bins"),
						Page(c.CategoryEnclosureBins, c.PriorityHigh, "Cache-poubelle extérieur {{{bins}}}", "cache-poubelle-exterieur", "$bins"),
						Page(c.CategoryEnclosureBins, c.PriorityHigh, "Abri poubelle {{{bins}}}", "abri-poubelle", "$bins"),
					},
					Nested: []Rule{{
						Axes: []Axis{On("material", t.EnclosureMaterials)},
						Pages: []PageTemplate{
							Page(c.CategoryEnclosureMaterialBins, c.PriorityHigh, "Cache-poubelle {{{material}}} {{{bins}}}", "cache-poubelle", "$material", "$bins"),
							Page(c.CategoryEnclosureMaterialBins, c.PriorityMedium, "Abri poubelle {{{material}}} {{{bins}}}", "abri-poubelle", "$material", "$bins"),
						},
					}},
				},
				{
					Axes: []Axis{On("place", t.EnclosureUsages), On("material", t.EnclosureMaterials)},
					Pages: []PageTemplate{
						Page(c.CategoryEnclosureUsageMaterial, c.PriorityMedium, "Cache-poubelle {{{place}}} {{{material}}}", "cache-poubelle", "$place", "$material"),
					},
				},
			},
		},
		{
			Name: "Accessoires",
			Axes: []Axis{On("accessory", t.Accessories)},
			Pages: []PageTemplate{
				Page(c.CategoryAccessory, c.PriorityMedium, "{{{capitalize accessory}}}", "$accessory"),
			},
		},
		{
			Name: "Sacs × Volume",
			Axes: []Axis{On("bag", t.BagVolumes)},
			Pages: []PageTemplate{
				Page(c.CategoryBagVolume, c.PriorityMedium, "Sac poubelle {{{upper bag_code}}}", "sac-poubelle", "$bag"),
				Page(c.CategoryBagVolume, c.PriorityMedium, "Sac compostable {{{upper bag_code}}}", "sac-compostable", "$bag"),
				Page(c.CategoryBagVolume, c.PriorityLow, "Sac biodégradable {{{upper bag_code}}}", "sac-biodegradable", "$bag"),
			},
		},
		{
			Name:  "Comparatifs",
			Pages: Literals(c.CategoryComparison, c.PriorityHigh, comparisons...),
			Nested: []Rule{
				{
					Axes: []Axis{On("usage", t.Usages)},
					Pages: []PageTemplate{
						Page(c.CategoryComparison, c.PriorityHigh, "Comparatif poubelles {{{usage}}}", "comparatif-poubelle", "$usage"),
					},
				},
				{
					Axes: []Axis{On("volume", t.ComparisonVolumes)},
					Pages: []PageTemplate{
						Page(c.CategoryComparison, c.PriorityHigh, "Comparatif poubelles {{{upper volume_code}}}", "comparatif-poubelle", "$volume"),
					},
				},
				{
					Axes: []Axis{On("brand", t.Brands)},
					Pages: []PageTemplate{
						Page(c.CategoryComparison, c.PriorityHigh, "Meilleure poubelle {{{brand}}}", "meilleure-poubelle", "$brand"),
					},
				},
			},
		},
		{
			Name:  "Guides informationnels",
			Pages: Literals(c.CategoryGuide, c.PriorityHigh, guides...),
			Nested: []Rule{
				{
					Axes: []Axis{On("usage", t.Usages)},
					Pages: []PageTemplate{
						Page(c.CategoryGuide, c.PriorityHigh, "Guide poubelle {{{usage}}}", "guide-poubelle", "$usage"),
					},
				},
				{
					Axes: []Axis{On("function", t.Functions)},
					Pages: []PageTemplate{
						Page(c.CategoryGuide, c.PriorityHigh, "Guide {{{function}}}", "guide", "$function"),
					},
				},
			},
		},
		{
			Name:  "Questions PAA",
			Pages: Literals(c.CategoryQuestion, c.PriorityMedium, questions...),
		},
		{
			Name: "Pages locales",
			Axes: []Axis{On("city", t.Cities)},
			Pages: []PageTemplate{
				Page(c.CategoryLocal, c.PriorityLow, "Collecte des déchets à {{{city}}}", "collecte-dechets", "$city"),
				Page(c.CategoryLocal, c.PriorityLow, "Jours de collecte des ordures à {{{city}}}", "jours-collecte", "$city"),
				Page(c.CategoryLocal, c.PriorityLow, "Commander un bac roulant à {{{city}}}", "bac-roulant", "$city"),
			},
		},
		{
			Name:  "Saisonnalité",
			Pages: Literals(c.CategorySeasonal, c.PriorityLow, seasonal...),
		},
		{
			Name:  "Variantes BE/CH",
			Pages: Literals(c.CategoryInternational, c.PriorityLow, international...),
		},
	}
}

var comparisons = []Literal{
	{"comparatif-poubelle-cuisine", "Comparatif poubelles de cuisine"},
	{"comparatif-poubelle-tri", "Comparatif poubelles de tri sélectif"},
	{"comparatif-poubelle-automatique", "Comparatif poubelles automatiques"},
	{"comparatif-poubelle-compost", "Comparatif poubelles à compost"},
	{"comparatif-poubelle-inox", "Comparatif poubelles inox"},
	{"comparatif-poubelle-bambou", "Comparatif poubelles bambou"},
	{"comparatif-poubelle-pedale", "Comparatif poubelles à pédale"},
	{"comparatif-cache-poubelle", "Comparatif cache-poubelle extérieur"},
	{"comparatif-simplehuman-brabantia", "Comparatif simplehuman vs Brabantia"},
	{"comparatif-poubelle-enfant", "Comparatif poubelles enfant"},
	{"comparatif-composteur-interieur", "Comparatif composteurs intérieurs"},
	{"comparatif-bac-roulant", "Comparatif bacs roulants"},
}

var guides = []Literal{
	{"comment-choisir-poubelle-cuisine", "Comment choisir sa poubelle de cuisine"},
	{"comment-choisir-poubelle-tri", "Comment choisir une poubelle de tri sélectif"},
	{"comment-choisir-cache-poubelle", "Comment choisir un cache-poubelle"},
	{"quelle-taille-poubelle-cuisine", "Quelle taille de poubelle pour la cuisine ?"},
	{"quelle-taille-poubelle-salle-de-bain", "Quelle taille de poubelle pour la salle de bain ?"},
	{"comment-recycler-plastique", "Comment recycler le plastique"},
	{"comment-recycler-verre", "Comment recycler le verre"},
	{"comment-recycler-papier", "Comment recycler le papier"},
	{"comment-composter", "Comment composter chez soi"},
	{"loi-agec-biodechets", "Loi AGEC : biodéchets obligatoires — ce qu'il faut savoir"},
	{"guide-tri-selectif-maison", "Guide du tri sélectif à la maison"},
	{"couleurs-bacs-poubelles-france", "Couleurs des bacs poubelles en France"},
	{"trier-dechets-appartement", "Comment trier ses déchets en appartement"},
	{"compost-appartement", "Faire son compost en appartement"},
	{"poubelle-bac-roulant-difference", "Différence entre poubelle et bac roulant"},
	{"nettoyer-poubelle", "Comment nettoyer sa poubelle"},
	{"poubelle-anti-odeur-test", "Poubelles anti-odeur : quelles sont les meilleures ?"},
	{"poubelle-automatique-vaut-il", "Poubelle automatique : ça vaut vraiment le coup ?"},
	{"matiere-poubelle-guide", "Quel matériau choisir pour sa poubelle ?"},
	{"entretien-bac-roulant", "Comment entretenir son bac roulant"},
	{"volume-poubelle-personne", "Quel volume de poubelle selon le nombre de personnes ?"},
	{"poubelle-cuisine-meilleure-marque", "Quelle est la meilleure marque de poubelle cuisine ?"},
	{"poubelle-design-pas-cher", "Poubelle design pas chère : les meilleures options"},
	{"biodechets-obligations-2024", "Biodéchets : obligations 2024 (loi AGEC)"},
	{"fabriquer-cache-poubelle-diy", "Fabriquer un cache-poubelle soi-même"},
	{"installer-cache-poubelle", "Comment installer un cache-poubelle extérieur"},
	{"poubelle-professionnelle-guide", "Choisir sa poubelle professionnelle"},
	{"poubelle-hopital-normes", "Poubelles hôpital : normes et obligations"},
	{"poubelle-restaurant-reglementation", "Poubelles restaurant : réglementation"},
	{"composteur-vs-vermicomposteur", "Composteur vs vermicomposteur : que choisir ?"},
	{"bac-compost-interieur-exterieur", "Compost intérieur ou extérieur : lequel choisir ?"},
	{"poubelle-cuisine-encastrable", "Poubelle de cuisine encastrable : guide"},
	{"poubelle-sous-evier", "Poubelle sous évier : les meilleures"},
	{"poubelle-mural-cuisine", "Poubelle murale pour cuisine"},
	{"bac-roulant-120l-240l", "Bac roulant 120L ou 240L : que choisir ?"},
	{"poubelle-noire-jaune-verte", "Poubelle noire, jaune ou verte : à quoi ça correspond ?"},
}

var questions = []Literal{
	{"quelle-poubelle-sdb", "Quelle poubelle pour la salle de bain ?"},
	{"poubelle-sdb-taille", "Quelle taille de poubelle pour la salle de bain ?"},
	{"poubelle-cuisine-30l-assez", "30 litres suffisent pour une poubelle cuisine ?"},
	{"poubelle-automatique-hygienique", "La poubelle automatique est-elle plus hygiénique ?"},
	{"bambou-poubelle-ecologique", "La poubelle en bambou est-elle vraiment écologique ?"},
	{"inox-ou-plastique-poubelle", "Poubelle inox ou plastique : laquelle choisir ?"},
	{"poubelle-pedale-ou-capteur", "Poubelle à pédale ou capteur : quelle différence ?"},
	{"comment-eviter-mauvaises-odeurs", "Comment éviter les mauvaises odeurs de poubelle ?"},
	{"poubelle-tri-cuisine-pratique", "Comment organiser le tri sélectif dans la cuisine ?"},
	{"quelle-couleur-bac-recyclage", "Quelle couleur pour le bac de recyclage ?"},
	{"poubelle-compost-odeur", "La poubelle à compost sent-elle mauvais ?"},
	{"sac-poubelle-30l-dimensions", "Dimensions d'un sac poubelle 30L ?"},
	{"cache-poubelle-exterieur-diy", "Comment faire un cache-poubelle extérieur soi-même ?"},
	{"quelle-poubelle-van", "Quelle poubelle pour un van ?"},
	{"poubelle-bureau-quelle-taille", "Quelle taille de poubelle pour le bureau ?"},
	{"bac-jaune-quoi-dedans", "Que met-on dans le bac jaune ?"},
	{"poubelle-noire-que-mettre", "Que mettre dans la poubelle noire ?"},
	{"verre-poubelle-verte", "Le verre va-t-il dans la poubelle verte ?"},
	{"poubelle-camping-car-quelle", "Quelle poubelle pour camping-car ?"},
	{"poubelle-hopital-couleur", "Quelles sont les couleurs des poubelles à l'hôpital ?"},
}

var seasonal = []Literal{
	{"poubelle-noel-promo", "Promo poubelle Noël"},
	{"poubelle-soldes", "Poubelle : les meilleures offres des soldes"},
	{"poubelle-black-friday", "Poubelle Black Friday"},
	{"poubelle-saint-valentin", "Poubelle Saint-Valentin"},
	{"poubelle-demenagement", "Quelle poubelle choisir pour un déménagement"},
	{"poubelle-cuisine-renovation", "Quelle poubelle pour une cuisine rénovée"},
	{"poubelle-jardin-ete", "Poubelle jardin été : les meilleures options"},
	{"poubelle-pas-chere-budget", "Poubelle pas chère : les meilleures options budget"},
	{"poubelle-haut-de-gamme", "Poubelles haut de gamme : les meilleures"},
}

var international = []Literal{
	{"poubelle-belgique", "Poubelle Belgique : guide complet"},
	{"poubelle-suisse", "Poubelle Suisse : guide complet"},
	{"sac-poubelle-officiel-belgique", "Sac poubelle officiel Belgique"},
	{"taxe-dechets-suisse", "Taxe déchets en Suisse : ce qu'il faut savoir"},
}
