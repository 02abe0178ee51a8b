package catalog

import (
	"encoding/json"
	"fmt"
)

// Category names the generation rule that produced a page.
type Category string

const (
	CategoryTypeUsage                Category = "type-usage"
	CategoryVolume                   Category = "volume"
	CategoryVolumeUsage              Category = "volume-usage"
	CategoryVolumeMechanism          Category = "volume-mecanisme"
	CategoryColor                    Category = "couleur"
	CategoryColorUsage               Category = "couleur-usage"
	CategoryColorVolume              Category = "couleur-volume"
	CategoryMaterial                 Category = "materiau"
	CategoryMaterialUsage            Category = "materiau-usage"
	CategoryMaterialVolume           Category = "materiau-volume"
	CategoryMaterialColor            Category = "materiau-couleur"
	CategoryMechanism                Category = "mecanisme"
	CategoryMechanismUsage           Category = "mecanisme-usage"
	CategorySortingCompartments      Category = "tri-compartiments"
	CategorySortingCompartmentsUsage Category = "tri-compartiments-usage"
	CategoryFunction                 Category = "fonction"
	CategoryFunctionUsage            Category = "fonction-usage"
	CategoryFunctionVolume           Category = "fonction-volume"
	CategoryStyle                    Category = "style"
	CategoryStyleUsage               Category = "style-usage"
	CategoryStyleMaterial            Category = "style-materiau"
	CategoryFeature                  Category = "caracteristique"
	CategoryFeatureUsage             Category = "caracteristique-usage"
	CategoryBrand                    Category = "marque"
	CategoryBrandReview              Category = "marque-avis"
	CategoryBrandUsage               Category = "marque-usage"
	CategoryEnclosure                Category = "cache-poubelle"
	CategoryEnclosureMaterial        Category = "cache-poubelle-materiau"
	CategoryEnclosureBins            Category = "cache-poubelle-nbacs"
	CategoryEnclosureMaterialBins    Category = "cache-poubelle-materiau-nbacs"
	CategoryEnclosureUsageMaterial   Category = "cache-poubelle-usage-materiau"
	CategoryAccessory                Category = "accessoire"
	CategoryBagVolume                Category = "sac-volume"
	CategoryComparison               Category = "comparatif"
	CategoryGuide                    Category = "guide"
	CategoryQuestion                 Category = "question-paa"
	CategoryLocal                    Category = "local"
	CategorySeasonal                 Category = "saisonnalite"
	CategoryInternational            Category = "international"
)

var knownCategories = map[Category]bool{}

func init() {
	for _, c := range Categories() {
		knownCategories[c] = true
	}
}

// Categories lists every category in generation order.
func Categories() []Category {
	return []Category{
		CategoryTypeUsage, CategoryVolume, CategoryVolumeUsage, CategoryVolumeMechanism,
		CategoryColor, CategoryColorUsage, CategoryColorVolume,
		CategoryMaterial, CategoryMaterialUsage, CategoryMaterialVolume, CategoryMaterialColor,
		CategoryMechanism, CategoryMechanismUsage,
		CategorySortingCompartments, CategorySortingCompartmentsUsage,
		CategoryFunction, CategoryFunctionUsage, CategoryFunctionVolume,
		CategoryStyle, CategoryStyleUsage, CategoryStyleMaterial,
		CategoryFeature, CategoryFeatureUsage,
		CategoryBrand, CategoryBrandReview, CategoryBrandUsage,
		CategoryEnclosure, CategoryEnclosureMaterial, CategoryEnclosureBins,
		CategoryEnclosureMaterialBins, CategoryEnclosureUsageMaterial,
		CategoryAccessory, CategoryBagVolume,
		CategoryComparison, CategoryGuide, CategoryQuestion,
		CategoryLocal, CategorySeasonal, CategoryInternational,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return knownCategories[c]
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// UnmarshalJSON rejects unknown categories.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
