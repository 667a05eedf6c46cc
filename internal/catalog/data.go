package catalog

// items is the canonical reference catalog. The first fifteen entries are
// the original curated set; the remainder is the expanded set appended
// later. Order is stable and significant: Search preserves it.
//
//nolint:gochecknoglobals // Fixed reference data, loaded once and never mutated.
var items = []Item{
	{
		ID:       1,
		Name:     "Beef Burger",
		Category: CategoryFood,
		Liters:   2400,
		Unit:     "burger",
		Fact: "A single beef burger requires more water than most people use in two " +
			"months of drinking water. This includes water for growing feed crops, " +
			"drinking water for cattle, and processing.",
	},
	{
		ID:       2,
		Name:     "Cup of Coffee",
		Category: CategoryFood,
		Liters:   140,
		Unit:     "cup",
		Fact: "Your morning coffee requires about 140 liters of water - equivalent to " +
			"nearly two bathtubs full. This includes water for growing, processing, " +
			"and roasting the coffee beans.",
	},
	{
		ID:       3,
		Name:     "Glass of Milk",
		Category: CategoryFood,
		Liters:   200,
		Unit:     "glass (250ml)",
		Fact: "It takes about 200 liters of water to produce one glass of milk, " +
			"including water for the cow to drink, grow feed, and clean the facilities.",
	},
	{
		ID:       4,
		Name:     "Slice of Bread",
		Category: CategoryFood,
		Liters:   40,
		Unit:     "slice",
		Fact: "Each slice of bread requires about 40 liters of water to produce, " +
			"mainly for growing and processing the wheat.",
	},
	{
		ID:       5,
		Name:     "Apple",
		Category: CategoryFood,
		Liters:   125,
		Unit:     "apple",
		Fact: "An average apple needs about 125 liters of water to grow. Apples are " +
			"actually quite water-intensive fruits due to their long growing season.",
	},
	{
		ID:       6,
		Name:     "Chocolate Bar",
		Category: CategoryFood,
		Liters:   1700,
		Unit:     "100g bar",
		Fact: "A chocolate bar requires massive amounts of water mainly for growing " +
			"cocoa beans. Cocoa trees need consistent rainfall and irrigation.",
	},
	{
		ID:       7,
		Name:     "Cotton T-Shirt",
		Category: CategoryClothing,
		Liters:   2700,
		Unit:     "shirt",
		Fact: "A single cotton t-shirt uses about 2,700 liters of water to produce - " +
			"that's enough drinking water for one person for 3.5 years!",
	},
	{
		ID:       8,
		Name:     "Pair of Jeans",
		Category: CategoryClothing,
		Liters:   7500,
		Unit:     "pair",
		Fact: "Jeans are incredibly water-intensive, requiring about 7,500 liters of " +
			"water. This includes growing cotton, dyeing with indigo, and multiple " +
			"wash cycles during production.",
	},
	{
		ID:       9,
		Name:     "Leather Shoes",
		Category: CategoryClothing,
		Liters:   8000,
		Unit:     "pair",
		Fact: "Leather shoes have one of the highest water footprints in fashion. The " +
			"water is used for raising cattle, tanning leather, and manufacturing " +
			"processes.",
	},
	{
		ID:       10,
		Name:     "Cotton Dress",
		Category: CategoryClothing,
		Liters:   5000,
		Unit:     "dress",
		Fact: "Cotton dresses require about 5,000 liters of water to produce. Cotton " +
			"is a very thirsty crop, especially when grown in dry regions with " +
			"irrigation.",
	},
	{
		ID:       11,
		Name:     "Smartphone",
		Category: CategoryElectronics,
		Liters:   12000,
		Unit:     "phone",
		Fact: "Manufacturing a smartphone requires about 12,000 liters of water for " +
			"mining rare earth metals, chip production, and assembly processes.",
	},
	{
		ID:       12,
		Name:     "Laptop Computer",
		Category: CategoryElectronics,
		Liters:   25000,
		Unit:     "laptop",
		Fact: "A laptop requires about 25,000 liters of water to manufacture. Most " +
			"water is used in semiconductor fabrication and cooling during production.",
	},
	{
		ID:       13,
		Name:     "Tablet",
		Category: CategoryElectronics,
		Liters:   15000,
		Unit:     "tablet",
		Fact: "Tablets require significant water for manufacturing processors and " +
			"screens. The semiconductor industry is one of the most water-intensive " +
			"manufacturing sectors.",
	},
	{
		ID:       14,
		Name:     "Television",
		Category: CategoryElectronics,
		Liters:   35000,
		Unit:     "TV",
		Fact: "A television requires about 35,000 liters of water to manufacture, " +
			"primarily for producing the display panel and electronic components.",
	},
	{
		ID:       15,
		Name:     "Gaming Console",
		Category: CategoryElectronics,
		Liters:   20000,
		Unit:     "console",
		Fact: "Gaming consoles have complex manufacturing processes requiring about " +
			"20,000 liters of water for chip fabrication and cooling systems.",
	},
	{
		ID:       16,
		Name:     "Rice",
		Category: CategoryFood,
		Liters:   2500,
		Unit:     "kg",
		Fact: "Rice paddies are flooded for most of the growing season, so a kilogram " +
			"of rice carries about 2,500 liters of water before it reaches your plate.",
	},
	{
		ID:       17,
		Name:     "Chicken",
		Category: CategoryFood,
		Liters:   4300,
		Unit:     "kg",
		Fact: "A kilogram of chicken takes about 4,300 liters of water, mostly for " +
			"growing feed grain. That's still less than a third of beef's footprint.",
	},
	{
		ID:       18,
		Name:     "Orange",
		Category: CategoryFood,
		Liters:   160,
		Unit:     "orange",
		Fact: "One orange needs about 160 liters of water from blossom to harvest. " +
			"Citrus groves in dry climates rely heavily on irrigation.",
	},
	{
		ID:       19,
		Name:     "Cup of Tea",
		Category: CategoryFood,
		Liters:   30,
		Unit:     "cup",
		Fact: "A cup of tea needs about 30 liters of water - less than a quarter of " +
			"coffee's footprint, making it one of the lightest everyday drinks.",
	},
	{
		ID:       20,
		Name:     "Wool Sweater",
		Category: CategoryClothing,
		Liters:   10000,
		Unit:     "sweater",
		Fact: "A wool sweater embeds roughly 10,000 liters of water, largely from " +
			"pasture and drinking water for sheep over the years of fleece growth.",
	},
	{
		ID:       21,
		Name:     "Sneakers",
		Category: CategoryClothing,
		Liters:   4400,
		Unit:     "pair",
		Fact: "A pair of sneakers takes about 4,400 liters of water across cotton " +
			"canvas, rubber processing, and synthetic material manufacturing.",
	},
	{
		ID:       22,
		Name:     "Headphones",
		Category: CategoryElectronics,
		Liters:   5000,
		Unit:     "pair",
		Fact: "Headphones need about 5,000 liters of water to manufacture, mostly for " +
			"the metals and plastics in their drivers and housing.",
	},
}

// Items returns the full reference catalog in canonical order.
// The returned slice is a copy; callers may not mutate the catalog.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ItemByID looks up a catalog item by its unique ID.
func ItemByID(id int) (Item, error) {
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}
