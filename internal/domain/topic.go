package domain

// Topic is one of the fixed research areas articles are grouped by.
type Topic struct {
	Name     string
	Slug     string
	Aliases  []string
	Title    string
	Cards    []TopicCard
	Hashtags []string
}

// TopicCard is a sub-area teaser shown on the topic detail page.
type TopicCard struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Matches reports whether slug names this topic, canonically or through a legacy alias.
func (t Topic) Matches(slug string) bool {
	if slug == t.Slug {
		return true
	}
	for _, alias := range t.Aliases {
		if slug == alias {
			return true
		}
	}
	return false
}

// Topic display names.
const (
	TopicVertebrate     = "Vertebrate"
	TopicPlants         = "Plants"
	TopicMicrobes       = "Microbes"
	TopicFungi          = "Fungi"
	TopicHumanCell      = "Human Cell & Biomedical"
	TopicSystemsBiology = "Systems Biology & Tools"
)

// Topics returns the six recognized topics in navigation order.
func Topics() []Topic {
	return []Topic{
		{
			Name:  TopicVertebrate,
			Slug:  Slugify(TopicVertebrate),
			Title: "VERTEBRATE",
			Cards: []TopicCard{
				{ID: "bone-physiology", Title: "Bone Physiology", Description: "Microgravity effects on bone density, osteocyte function, and calcium metabolism", Icon: "🦴"},
				{ID: "muscle-adaptation", Title: "Muscle Adaptation", Description: "Skeletal muscle changes, atrophy prevention, and exercise countermeasures", Icon: "💪"},
				{ID: "cardiovascular-changes", Title: "Cardiovascular Changes", Description: "Heart function adaptations and blood circulation in microgravity", Icon: "❤️"},
			},
			Hashtags: []string{"#VertebrataModel", "#HumanCellsInMicrogravity", "#OmicsIntegration", "#SystemsPhysiology", "#ComparativeMicrogravityModels"},
		},
		{
			Name:  TopicPlants,
			Slug:  Slugify(TopicPlants),
			Title: "PLANTS",
			Cards: []TopicCard{
				{ID: "model-species", Title: "Model Species", Description: "Arabidopsis, Brassica rapa, moss, and other plant models in space research", Icon: "🌿"},
				{ID: "gravitropism-growth", Title: "Gravitropism & Growth", Description: "Root growth patterns, photosynthesis, and gene expression in microgravity", Icon: "🌱"},
				{ID: "stress-hormones", Title: "Stress & Hormones", Description: "Stress signaling pathways, root development, and auxin regulation", Icon: "🌾"},
			},
			Hashtags: []string{"#SpacePlants", "#RootGrowth", "#Photosynthesis", "#PlantOmics", "#Gravitropism"},
		},
		{
			Name:  TopicMicrobes,
			Slug:  Slugify(TopicMicrobes),
			Title: "MICROBES",
			Cards: []TopicCard{
				{ID: "bacterial-adaptation", Title: "Bacterial Adaptation", Description: "Microbial survival strategies and genetic modifications in extreme environments", Icon: "🦠"},
				{ID: "virulence-factors", Title: "Virulence Factors", Description: "Changes in pathogenicity and biofilm formation under space conditions", Icon: "🧫"},
				{ID: "extremophiles", Title: "Extremophiles", Description: "Hardy microorganisms and their potential for astrobiology applications", Icon: "🔬"},
			},
			Hashtags: []string{"#Astrobiology", "#BacterialAdaptation", "#Extremophiles", "#SpaceMicrobiology", "#PlanetaryProtection"},
		},
		{
			Name:  TopicFungi,
			Slug:  Slugify(TopicFungi),
			Title: "FUNGI",
			Cards: []TopicCard{
				{ID: "spore-viability", Title: "Spore Viability", Description: "Fungal spore survival rates and dormancy mechanisms in space environments", Icon: "🍄"},
				{ID: "morphological-changes", Title: "Morphological Changes", Description: "Structural adaptations and growth pattern modifications in microgravity", Icon: "🧬"},
				{ID: "biotechnology-applications", Title: "Biotechnology Applications", Description: "Fungal biomaterials and potential applications for space missions", Icon: "⚗️"},
			},
			Hashtags: []string{"#FungalBiology", "#SporeViability", "#Biotechnology", "#SpaceMaterials", "#FungalAdaptation"},
		},
		{
			Name:    TopicHumanCell,
			Slug:    Slugify(TopicHumanCell),
			Aliases: []string{"human-cell"},
			Title:   "HUMAN CELL & BIOMEDICAL",
			Cards: []TopicCard{
				{ID: "cell-culture", Title: "Cell Culture", Description: "Human cell line responses and adaptation mechanisms in microgravity", Icon: "🧪"},
				{ID: "tissue-engineering", Title: "Tissue Engineering", Description: "3D tissue models and regenerative medicine applications in space", Icon: "🫀"},
				{ID: "drug-development", Title: "Drug Development", Description: "Pharmaceutical research and drug efficacy studies in microgravity", Icon: "💊"},
			},
			Hashtags: []string{"#SpaceMedicine", "#CellCulture", "#TissueEngineering", "#DrugDevelopment", "#HumanHealthInSpace"},
		},
		{
			Name:    TopicSystemsBiology,
			Slug:    Slugify(TopicSystemsBiology),
			Aliases: []string{"systems-biology"},
			Title:   "SYSTEMS BIOLOGY & TOOLS",
			Cards: []TopicCard{
				{ID: "omics-integration", Title: "Omics Integration", Description: "Multi-omics approaches for comprehensive biological system analysis", Icon: "📊"},
				{ID: "bioinformatics-tools", Title: "Bioinformatics Tools", Description: "Computational methods and software for space biology data analysis", Icon: "💻"},
				{ID: "data-visualization", Title: "Data Visualization", Description: "Advanced visualization techniques for complex biological datasets", Icon: "📈"},
			},
			Hashtags: []string{"#SystemsBiology", "#Bioinformatics", "#DataScience", "#OmicsIntegration", "#ComputationalBiology"},
		},
	}
}
