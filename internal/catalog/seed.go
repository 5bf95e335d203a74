package catalog

import "ArticlesExplorer/internal/domain"

func seedArticles() []domain.Article {
	return []domain.Article{
		{
			ID:          "vertebrate-bone-loss",
			Title:       "Microgravity Induces Pelvic Bone Loss Through Osteoclastic Activity",
			Description: "Comprehensive study on bone density changes in microgravity environments and cellular mechanisms.",
			Topic:       domain.TopicVertebrate,
			Year:        2024,
			Authors:     []string{"Dr. Sarah Chen", "Dr. Michael Rodriguez", "Dr. Emma Thompson"},
			Keywords:    []string{"microgravity", "bone loss", "osteocytes", "osteoblasts", "osteoclasts", "pelvic bone", "space medicine"},
			Abstract:    "This study investigates the mechanisms of bone loss in microgravity environments, focusing on cellular activity and metabolic changes in vertebrate models.",
			Sections: domain.Sections{
				Background: "Microgravity environments pose significant challenges to bone health in vertebrates. Previous studies have shown accelerated bone loss during spaceflight, but the underlying cellular mechanisms remain unclear.",
				Methods:    "We utilized a combination of in vitro cell cultures and animal models exposed to simulated microgravity conditions. Bone density measurements were taken using micro-CT scanning, and cellular activity was monitored through fluorescent markers.",
				Results:    "Our findings demonstrate a 15-20% reduction in bone density over 30 days of microgravity exposure. Osteoclastic activity increased by 300% while osteoblastic activity decreased by 40%.",
				Discussion: "The results suggest that microgravity primarily affects bone remodeling through enhanced bone resorption rather than decreased bone formation. This has significant implications for long-duration spaceflight missions.",
				Conclusion: "Understanding these mechanisms is crucial for developing countermeasures to prevent bone loss in astronauts during extended space missions.",
			},
		},
		{
			ID:          "plants-gravitropism",
			Title:       "Root Growth and Photosynthesis in Microgravity: Arabidopsis Model Studies",
			Description: "Investigation of plant growth mechanisms and photosynthetic efficiency in zero-gravity conditions.",
			Topic:       domain.TopicPlants,
			Year:        2023,
			Authors:     []string{"Dr. Lisa Wang", "Dr. James Park", "Dr. Maria Gonzalez"},
			Keywords:    []string{"gravitropism", "root growth", "photosynthesis", "Arabidopsis", "plant biology", "space agriculture", "auxin regulation"},
			Abstract:    "This research examines how microgravity affects plant growth patterns, root development, and photosynthetic processes in Arabidopsis thaliana.",
			Sections: domain.Sections{
				Background: "Understanding plant growth in microgravity is essential for sustainable life support systems in space exploration.",
				Methods:    "Arabidopsis seedlings were grown in controlled microgravity simulators with continuous monitoring of growth parameters.",
				Results:    "Plants showed altered gravitropic responses with increased lateral root formation and modified photosynthetic efficiency.",
				Discussion: "The adaptive mechanisms suggest potential for successful space agriculture with proper environmental controls.",
				Conclusion: "These findings contribute to the development of sustainable food production systems for space missions.",
			},
		},
		{
			ID:          "microbes-adaptation",
			Title:       "Bacterial Adaptation and Virulence Changes in Simulated Martian Environment",
			Description: "Study of microbial behavior and genetic expression under extreme environmental conditions.",
			Topic:       domain.TopicMicrobes,
			Year:        2024,
			Authors:     []string{"Dr. Robert Kim", "Dr. Alice Johnson", "Dr. David Lee"},
			Keywords:    []string{"bacteria", "Mars simulation", "virulence", "adaptation", "extremophiles", "astrobiology", "genetic expression"},
			Abstract:    "This study explores how bacteria adapt to Mars-like environmental conditions and the implications for planetary protection.",
			Sections: domain.Sections{
				Background: "Understanding microbial survival and adaptation in extraterrestrial environments is crucial for planetary protection protocols.",
				Methods:    "Bacterial cultures were exposed to simulated Martian conditions including low pressure, temperature fluctuations, and radiation.",
				Results:    "Several bacterial strains showed enhanced survival mechanisms and altered virulence factors under stress conditions.",
				Discussion: "The adaptive responses highlight the importance of strict sterilization protocols for space missions.",
				Conclusion: "These findings inform biosafety measures and contamination prevention strategies for Mars exploration.",
			},
		},
		{
			ID:          "fungi-spores",
			Title:       "Fungal Spore Viability and Morphological Changes in Deep Space Conditions",
			Description: "Analysis of fungal survival mechanisms and structural adaptations in extreme space environments.",
			Topic:       domain.TopicFungi,
			Year:        2023,
			Authors:     []string{"Dr. Nina Patel", "Dr. Carlos Silva", "Dr. Helen Chang"},
			Keywords:    []string{"fungi", "spores", "deep space", "viability", "morphology", "extremophiles", "space biology"},
			Abstract:    "Investigation of fungal spore survival and morphological adaptations when exposed to deep space environmental conditions.",
			Sections: domain.Sections{
				Background: "Fungi represent one of the most resilient life forms and understanding their survival in space has implications for astrobiology.",
				Methods:    "Fungal spores were exposed to vacuum, radiation, and extreme temperatures typical of deep space conditions.",
				Results:    "Spores demonstrated remarkable survival rates with morphological adaptations that enhanced resistance to environmental stresses.",
				Discussion: "The survival mechanisms identified could inform the search for life in extreme extraterrestrial environments.",
				Conclusion: "Fungal resilience provides insights into the potential for life to survive interplanetary travel.",
			},
		},
		{
			ID:          "human-cell-culture",
			Title:       "Human Cell Culture Responses to Microgravity: Implications for Space Medicine",
			Description: "Comprehensive analysis of human cellular responses and adaptation mechanisms in microgravity conditions.",
			Topic:       domain.TopicHumanCell,
			Year:        2024,
			Authors:     []string{"Dr. Amanda Foster", "Dr. Kevin Zhang", "Dr. Sophie Miller"},
			Keywords:    []string{"human cells", "cell culture", "microgravity", "space medicine", "cellular adaptation", "biomedical research"},
			Abstract:    "This study examines how human cells respond and adapt to microgravity conditions at the cellular and molecular level.",
			Sections: domain.Sections{
				Background: "Understanding cellular responses to microgravity is fundamental to protecting astronaut health during space missions.",
				Methods:    "Various human cell lines were cultured in microgravity simulators with comprehensive molecular analysis.",
				Results:    "Cells showed altered metabolism, gene expression, and protein synthesis patterns in microgravity conditions.",
				Discussion: "The cellular adaptations provide insights into potential health risks and protective mechanisms.",
				Conclusion: "These findings contribute to the development of medical countermeasures for space exploration.",
			},
		},
		{
			ID:          "systems-biology-omics",
			Title:       "Integrative Omics Analysis of Biological Systems in Space Environment",
			Description: "Multi-omics approach to understanding biological system responses to space environmental factors.",
			Topic:       domain.TopicSystemsBiology,
			Year:        2023,
			Authors:     []string{"Dr. Rachel Green", "Dr. Thomas Anderson", "Dr. Yuki Tanaka"},
			Keywords:    []string{"omics", "systems biology", "space environment", "bioinformatics", "multi-omics", "data integration"},
			Abstract:    "Application of integrated omics technologies to study complex biological responses to space environmental conditions.",
			Sections: domain.Sections{
				Background: "Systems-level approaches are needed to understand the complex interactions of biological systems in space environments.",
				Methods:    "Multi-omics data integration including genomics, transcriptomics, proteomics, and metabolomics analysis.",
				Results:    "Comprehensive molecular profiles revealed coordinated responses across multiple biological pathways.",
				Discussion: "The systems-level insights provide a holistic understanding of space-induced biological changes.",
				Conclusion: "Integrated omics approaches are essential for advancing space biology research and astronaut health protection.",
			},
		},
	}
}
