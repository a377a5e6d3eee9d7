package domain

// Auxiliary datasets are copied through the pipeline with minimal
// transformation. They are typed here so consumers get real fields
// instead of opaque maps, but the pipeline never derives anything
// from them.

// Material is a GregTech material record.
type Material struct {
	Name             string  `json:"name"`
	LocalizedName    string  `json:"localizedName"`
	ChemicalFormula  string  `json:"chemicalFormula,omitempty"`
	Density          float64 `json:"density,omitempty"`
	Mass             float64 `json:"mass,omitempty"`
	OreValue         int     `json:"oreValue,omitempty"`
	ToolSpeed        float64 `json:"toolSpeed,omitempty"`
	ToolQuality      int     `json:"toolQuality,omitempty"`
	ToolDurability   int     `json:"toolDurability,omitempty"`
	MeltingPoint     int     `json:"meltingPoint,omitempty"`
	BlastFurnaceTemp int     `json:"blastFurnaceTemp,omitempty"`
	GasTemp          int     `json:"gasTemp,omitempty"`
	ProcessingTierEU int     `json:"processingTierEU,omitempty"`
}

// BeeMutation is one bee breeding combination.
type BeeMutation struct {
	Parent1UID    string   `json:"parent1Uid"`
	Parent1Name   string   `json:"parent1Name"`
	Parent2UID    string   `json:"parent2Uid"`
	Parent2Name   string   `json:"parent2Name"`
	OffspringUID  string   `json:"offspringUid"`
	OffspringName string   `json:"offspringName"`
	Chance        float64  `json:"chance"`
	Conditions    []string `json:"conditions"`
}

// BeeProduct is an item a bee species produces.
type BeeProduct struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Chance      float64 `json:"chance"`
}

// BeeSpecies describes one bee species.
type BeeSpecies struct {
	UID         string       `json:"uid"`
	Binomial    string       `json:"binomial"`
	Branch      string       `json:"branch"`
	Temperature string       `json:"temperature"`
	Humidity    string       `json:"humidity"`
	Nocturnal   bool         `json:"nocturnal"`
	Products    []BeeProduct `json:"products"`
}

// BeeBreeding is the raw bee export: mutations plus species.
type BeeBreeding struct {
	Mutations []BeeMutation `json:"mutations"`
	Species   []BeeSpecies  `json:"species"`
}

// OreInfo identifies one ore block within a vein.
type OreInfo struct {
	Meta         int    `json:"meta"`
	MaterialName string `json:"materialName"`
}

// OreVein is a worldgen ore vein definition.
type OreVein struct {
	Name          string   `json:"name"`
	MinY          int      `json:"minY"`
	MaxY          int      `json:"maxY"`
	Weight        int      `json:"weight"`
	Density       int      `json:"density"`
	Size          int      `json:"size"`
	PrimaryOre    OreInfo  `json:"primaryOre"`
	SecondaryOre  OreInfo  `json:"secondaryOre"`
	BetweenOre    OreInfo  `json:"betweenOre"`
	SporadicOre   OreInfo  `json:"sporadicOre"`
	Dimensions    []string `json:"dimensions"`
	RestrictBiome string   `json:"restrictBiome"`
}

// SmallOre is a scattered single-block ore definition.
type SmallOre struct {
	Name       string   `json:"name"`
	MinY       int      `json:"minY"`
	MaxY       int      `json:"maxY"`
	Amount     int      `json:"amount"`
	Ore        OreInfo  `json:"ore"`
	Dimensions []string `json:"dimensions"`
	Biome      string   `json:"biome"`
}

// BloodMagicAltarRecipe is a blood altar crafting recipe.
type BloodMagicAltarRecipe struct {
	Input           RecipeItem `json:"input"`
	Output          RecipeItem `json:"output"`
	MinTier         int        `json:"minTier"`
	LiquidRequired  int        `json:"liquidRequired"`
	ConsumptionRate int        `json:"consumptionRate"`
	DrainRate       int        `json:"drainRate"`
}

// BloodMagicAlchemyRecipe is an alchemy set recipe.
type BloodMagicAlchemyRecipe struct {
	Output   RecipeItem   `json:"output"`
	OrbLevel int          `json:"orbLevel"`
	Inputs   []RecipeItem `json:"inputs"`
}

// BloodMagic bundles the blood magic recipe collections.
type BloodMagic struct {
	AltarRecipes   []BloodMagicAltarRecipe   `json:"altarRecipes"`
	AlchemyRecipes []BloodMagicAlchemyRecipe `json:"alchemyRecipes"`
}
