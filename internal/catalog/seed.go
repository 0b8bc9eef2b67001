package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
)

type seedMenuItem struct {
	name        string
	description string
	price       string
	category    enums.MenuCategory
	imageURL    string
}

// Catalog rows are fixed constants, reseeded on every boot. IDs are derived
// from the item name so they stay stable across restarts.
var seedMenu = []seedMenuItem{
	{"Bruschetta al Pomodoro", "Grilled sourdough, heirloom tomatoes, basil, aged balsamic", "7.50", enums.MenuCategoryStarters, "/images/menu/bruschetta.jpg"},
	{"Crispy Calamari", "Lightly battered squid, lemon aioli, charred lime", "9.25", enums.MenuCategoryStarters, "/images/menu/calamari.jpg"},
	{"Burrata Caprese", "Creamy burrata, vine tomatoes, basil oil, sea salt", "10.00", enums.MenuCategoryStarters, "/images/menu/burrata.jpg"},
	{"Truffle Mushroom Risotto", "Carnaroli rice, porcini, black truffle shavings, parmesan", "16.50", enums.MenuCategoryMain, "/images/menu/risotto.jpg"},
	{"Herb-Crusted Salmon", "Atlantic salmon, lemon butter, charred asparagus", "19.00", enums.MenuCategoryMain, "/images/menu/salmon.jpg"},
	{"Savoria Signature Burger", "Dry-aged beef, smoked cheddar, caramelized onion, brioche", "14.75", enums.MenuCategoryMain, "/images/menu/burger.jpg"},
	{"Pappardelle Bolognese", "Slow-braised beef ragu, hand-cut pasta, pecorino", "15.25", enums.MenuCategoryMain, "/images/menu/pappardelle.jpg"},
	{"Tiramisu Classico", "Espresso-soaked savoiardi, mascarpone, cocoa", "8.00", enums.MenuCategoryDesserts, "/images/menu/tiramisu.jpg"},
	{"Molten Chocolate Cake", "Warm dark chocolate cake, vanilla bean gelato", "8.50", enums.MenuCategoryDesserts, "/images/menu/molten-cake.jpg"},
	{"Lemon Panna Cotta", "Silky cream, limoncello glaze, candied zest", "7.25", enums.MenuCategoryDesserts, "/images/menu/panna-cotta.jpg"},
	{"Fresh Basil Lemonade", "Cold-pressed lemon, basil syrup, sparkling water", "4.50", enums.MenuCategoryDrinks, "/images/menu/lemonade.jpg"},
	{"Espresso Martini", "Double espresso, vodka, coffee liqueur", "11.00", enums.MenuCategoryDrinks, "/images/menu/espresso-martini.jpg"},
	{"Mango Lassi", "Alphonso mango, yogurt, cardamom", "5.00", enums.MenuCategoryDrinks, "/images/menu/lassi.jpg"},
}

type seedReview struct {
	name   string
	avatar string
	rating int
	review string
}

var seedReviews = []seedReview{
	{"Priya Sharma", "/images/avatars/priya.jpg", 5, "The truffle risotto is the best I've had outside of Italy. Delivery was quicker than the estimate."},
	{"Marcus Chen", "/images/avatars/marcus.jpg", 5, "Ordered for a team dinner, everything arrived hot and the tracking page kept everyone updated."},
	{"Elena Petrova", "/images/avatars/elena.jpg", 4, "Beautiful plating even for takeaway. The molten cake alone is worth ordering again."},
	{"David Okafor", "/images/avatars/david.jpg", 5, "Reserved a table through the site, zero friction. The tasting menu did not disappoint."},
}

// Seed writes the fixed catalog into the database. Existing rows with the
// same derived ID are left untouched so reseeding on boot is idempotent.
func Seed(ctx context.Context, db *gorm.DB) error {
	menuItems := make([]models.MenuItem, 0, len(seedMenu))
	for _, item := range seedMenu {
		menuItems = append(menuItems, models.MenuItem{
			ID:          seedID("menu", item.name),
			Name:        item.name,
			Description: item.description,
			Price:       decimal.RequireFromString(item.price),
			Category:    item.category,
			ImageURL:    item.imageURL,
		})
	}
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&menuItems).Error; err != nil {
		return err
	}

	reviews := make([]models.Review, 0, len(seedReviews))
	for _, entry := range seedReviews {
		reviews = append(reviews, models.Review{
			ID:     seedID("review", entry.name),
			Name:   entry.name,
			Avatar: entry.avatar,
			Rating: entry.rating,
			Review: entry.review,
		})
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&reviews).Error
}

func seedID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("savoria:"+kind+":"+name))
}
