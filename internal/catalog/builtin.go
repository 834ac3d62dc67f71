package catalog

// Builtin returns the default catalog shipped with the service: the 50
// products the detector is trained on. Deployments with their own
// assortment load a YAML file or SQLite database instead.
func Builtin() []Product {
	return []Product{
		// Beverages (1-10)
		{ID: 1, Name: "pulmuone_spring_water_500", Category: CategoryBeverage, UnitWeight: 520, UnitPrice: 1200},
		{ID: 2, Name: "samdasoo_500", Category: CategoryBeverage, UnitWeight: 520, UnitPrice: 1000},
		{ID: 3, Name: "evian_500", Category: CategoryBeverage, UnitWeight: 530, UnitPrice: 2500},
		{ID: 4, Name: "coca_cola_350", Category: CategoryBeverage, UnitWeight: 380, UnitPrice: 1800},
		{ID: 5, Name: "sprite_350", Category: CategoryBeverage, UnitWeight: 380, UnitPrice: 1800},
		{ID: 6, Name: "fanta_orange_350", Category: CategoryBeverage, UnitWeight: 385, UnitPrice: 1800},
		{ID: 7, Name: "pocari_sweat_500", Category: CategoryBeverage, UnitWeight: 540, UnitPrice: 2000},
		{ID: 8, Name: "gatorade_600", Category: CategoryBeverage, UnitWeight: 640, UnitPrice: 2500},
		{ID: 9, Name: "vita500", Category: CategoryBeverage, UnitWeight: 130, UnitPrice: 1200},
		{ID: 10, Name: "hot6", Category: CategoryBeverage, UnitWeight: 260, UnitPrice: 1500},

		// Snacks (11-20)
		{ID: 11, Name: "pepero_original", Category: CategorySnack, UnitWeight: 69, UnitPrice: 1500},
		{ID: 12, Name: "pepero_almond", Category: CategorySnack, UnitWeight: 72, UnitPrice: 1700},
		{ID: 13, Name: "choco_pie", Category: CategorySnack, UnitWeight: 39, UnitPrice: 800},
		{ID: 14, Name: "orion_pie", Category: CategorySnack, UnitWeight: 35, UnitPrice: 700},
		{ID: 15, Name: "honey_butter_chip", Category: CategorySnack, UnitWeight: 60, UnitPrice: 2000},
		{ID: 16, Name: "potato_chip_original", Category: CategorySnack, UnitWeight: 65, UnitPrice: 1800},
		{ID: 17, Name: "shrimp_chip", Category: CategorySnack, UnitWeight: 90, UnitPrice: 1500},
		{ID: 18, Name: "onion_ring", Category: CategorySnack, UnitWeight: 84, UnitPrice: 1600},
		{ID: 19, Name: "cheese_ball", Category: CategorySnack, UnitWeight: 70, UnitPrice: 1400},
		{ID: 20, Name: "pringles_original", Category: CategorySnack, UnitWeight: 53, UnitPrice: 2500},

		// Chocolate / candy (21-25)
		{ID: 21, Name: "snickers", Category: CategoryCandy, UnitWeight: 52, UnitPrice: 1500},
		{ID: 22, Name: "twix", Category: CategoryCandy, UnitWeight: 50, UnitPrice: 1500},
		{ID: 23, Name: "kitkat", Category: CategoryCandy, UnitWeight: 45, UnitPrice: 1200},
		{ID: 24, Name: "m_and_m", Category: CategoryCandy, UnitWeight: 45, UnitPrice: 2000},
		{ID: 25, Name: "ferrero_rocher", Category: CategoryCandy, UnitWeight: 37, UnitPrice: 2500},

		// Convenience food (26-35)
		{ID: 26, Name: "chickenmayo_rice", Category: CategoryFood, UnitWeight: 365, UnitPrice: 3500},
		{ID: 27, Name: "tuna_rice", Category: CategoryFood, UnitWeight: 350, UnitPrice: 3200},
		{ID: 28, Name: "spam_rice", Category: CategoryFood, UnitWeight: 380, UnitPrice: 3800},
		{ID: 29, Name: "egg_sandwich", Category: CategoryFood, UnitWeight: 170, UnitPrice: 2800},
		{ID: 30, Name: "ham_sandwich", Category: CategoryFood, UnitWeight: 180, UnitPrice: 3200},
		{ID: 31, Name: "tuna_sandwich", Category: CategoryFood, UnitWeight: 175, UnitPrice: 3500},
		{ID: 32, Name: "cup_noodle_small", Category: CategoryFood, UnitWeight: 65, UnitPrice: 1200},
		{ID: 33, Name: "cup_noodle_big", Category: CategoryFood, UnitWeight: 110, UnitPrice: 1800},
		{ID: 34, Name: "instant_rice", Category: CategoryFood, UnitWeight: 210, UnitPrice: 2000},
		{ID: 35, Name: "kimbap", Category: CategoryFood, UnitWeight: 250, UnitPrice: 2500},

		// Dairy (36-42)
		{ID: 36, Name: "seoul_milk_200", Category: CategoryDairy, UnitWeight: 210, UnitPrice: 1200},
		{ID: 37, Name: "banana_milk", Category: CategoryDairy, UnitWeight: 245, UnitPrice: 1500},
		{ID: 38, Name: "strawberry_milk", Category: CategoryDairy, UnitWeight: 245, UnitPrice: 1500},
		{ID: 39, Name: "chocolate_milk", Category: CategoryDairy, UnitWeight: 250, UnitPrice: 1500},
		{ID: 40, Name: "yogurt_plain", Category: CategoryDairy, UnitWeight: 85, UnitPrice: 1000},
		{ID: 41, Name: "yogurt_strawberry", Category: CategoryDairy, UnitWeight: 90, UnitPrice: 1200},
		{ID: 42, Name: "cheese_slice_pack", Category: CategoryDairy, UnitWeight: 200, UnitPrice: 3500},

		// Health (43-47)
		{ID: 43, Name: "protein_bar", Category: CategoryHealth, UnitWeight: 50, UnitPrice: 2500},
		{ID: 44, Name: "energy_bar", Category: CategoryHealth, UnitWeight: 45, UnitPrice: 2000},
		{ID: 45, Name: "granola_bar", Category: CategoryHealth, UnitWeight: 40, UnitPrice: 1800},
		{ID: 46, Name: "vitamin_c", Category: CategoryHealth, UnitWeight: 35, UnitPrice: 1500},
		{ID: 47, Name: "multivitamin", Category: CategoryHealth, UnitWeight: 30, UnitPrice: 2000},

		// Misc (48-50)
		{ID: 48, Name: "gum_pack", Category: CategoryEtc, UnitWeight: 25, UnitPrice: 1000},
		{ID: 49, Name: "mint_candy", Category: CategoryEtc, UnitWeight: 15, UnitPrice: 800},
		{ID: 50, Name: "wet_tissue", Category: CategoryEtc, UnitWeight: 50, UnitPrice: 1000},
	}
}
