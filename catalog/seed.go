package catalog

import "github.com/SOf1AN3/myks-sports-bolt/models"

func ptr(v float64) *float64 { return &v }

// SeedProducts returns the six demonstration products served when the
// product table is empty. A bootstrap affordance so a fresh install shows a
// browsable catalogue, not an error.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:                  "1",
			Name:                "T-Shirt Performance Pro",
			Price:               45,
			OriginalPrice:       ptr(60),
			Image:               "https://images.pexels.com/photos/6551415/pexels-photo-6551415.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:            "T-Shirts",
			Sizes:               models.StringList{"S", "M", "L", "XL"},
			Colors:              models.StringList{"Noir", "Blanc", "Gris", "Bleu"},
			Description:         "T-shirt technique haute performance",
			DetailedDescription: "Notre T-shirt Performance Pro est conçu avec des matériaux techniques de dernière génération. Tissu respirant et évacuation optimale de l'humidité pour vos entraînements les plus intenses. Coupe ajustée et confortable.",
			IsNew:               true,
			OnSale:              true,
		},
		{
			ID:                  "2",
			Name:                "Legging Ultra Flex",
			Price:               65,
			Image:               "https://images.pexels.com/photos/6551307/pexels-photo-6551307.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:            "Leggings",
			Sizes:               models.StringList{"XS", "S", "M", "L", "XL"},
			Colors:              models.StringList{"Noir", "Violet", "Gris foncé"},
			Description:         "Legging ultra-stretch pour un confort maximal",
			DetailedDescription: "Le Legging Ultra Flex offre une liberté de mouvement incomparable grâce à son tissu 4-way stretch. Taille haute avec support compressif, poches latérales et finitions sans coutures pour éviter les irritations.",
			IsNew:               false,
			OnSale:              false,
		},
		{
			ID:                  "3",
			Name:                "Veste Training Elite",
			Price:               85,
			Image:               "https://images.pexels.com/photos/6551224/pexels-photo-6551224.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:            "Vestes",
			Sizes:               models.StringList{"S", "M", "L", "XL", "XXL"},
			Colors:              models.StringList{"Noir", "Gris", "Bleu marine"},
			Description:         "Veste technique pour l'entraînement",
			DetailedDescription: "Veste polyvalente avec zip intégral, poches zippées et capuche ajustable. Matière déperlante et coupe-vent, parfaite pour l'extérieur. Design moderne avec détails réfléchissants.",
			IsNew:               true,
			OnSale:              false,
		},
		{
			ID:                  "4",
			Name:                "Short Running Pro",
			Price:               35,
			OriginalPrice:       ptr(45),
			Image:               "https://images.pexels.com/photos/6551342/pexels-photo-6551342.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:            "Shorts",
			Sizes:               models.StringList{"S", "M", "L", "XL"},
			Colors:              models.StringList{"Noir", "Bleu", "Gris"},
			Description:         "Short de course technique et léger",
			DetailedDescription: "Short de running avec caleçon intégré, poches latérales et cordon de serrage. Matière ultra-légère et séchage rapide. Bandes réfléchissantes pour la visibilité nocturne.",
			IsNew:               false,
			OnSale:              true,
		},
		{
			ID:                  "5",
			Name:                "Brassière Sport Intense",
			Price:               40,
			Image:               "https://images.pexels.com/photos/6551376/pexels-photo-6551376.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:            "Brassières",
			Sizes:               models.StringList{"XS", "S", "M", "L", "XL"},
			Colors:              models.StringList{"Noir", "Blanc", "Violet", "Rose"},
			Description:         "Brassière de sport haute performance",
			DetailedDescription: "Brassière avec support renforcé pour les activités haute intensité. Matière compressive et respirante, dos nageur pour une liberté de mouvement optimale. Bonnets amovibles.",
			IsNew:               true,
			OnSale:              false,
		},
		{
			ID:                  "6",
			Name:                "Sweatshirt Urban Style",
			Price:               55,
			Image:               "https://images.pexels.com/photos/6551294/pexels-photo-6551294.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:            "Sweatshirts",
			Sizes:               models.StringList{"S", "M", "L", "XL"},
			Colors:              models.StringList{"Gris", "Noir", "Beige"},
			Description:         "Sweatshirt streetwear premium",
			DetailedDescription: "Sweatshirt à capuche avec coupe moderne oversize. Matière coton bio mélangé, poche kangourou et finitions de qualité premium. Perfect pour le sport et la ville.",
			IsNew:               false,
			OnSale:              false,
		},
	}
}
