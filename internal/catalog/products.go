package catalog

import "github.com/fitgym/backend/internal/models"

var seedProducts = []models.Product{
	{ID: 1, Name: "Optimum Nutrition Gold Standard Whey Protein", Category: "protein", Price: 3499, OriginalPrice: 4499, Discount: 22, Description: "24g protein per serving, 5.5g BCAAs, 4g glutamine & glutamic acid", Rating: 4.8, Reviews: 1247, InStock: true, Brand: "Optimum Nutrition"},
	{ID: 2, Name: "MyProtein Impact Whey Isolate", Category: "protein", Price: 2799, OriginalPrice: 3599, Discount: 22, Description: "90% protein content, low in carbs and fat, perfect for lean muscle", Rating: 4.6, Reviews: 892, InStock: true, Brand: "MyProtein"},
	{ID: 3, Name: "MuscleBlaze Biozyme Performance Whey", Category: "protein", Price: 1899, OriginalPrice: 2499, Discount: 24, Description: "24g protein, digestive enzymes, 5.5g BCAAs, great taste", Rating: 4.4, Reviews: 567, InStock: true, Brand: "MuscleBlaze"},
	{ID: 4, Name: "BSN Syntha-6 Protein Powder", Category: "protein", Price: 4299, OriginalPrice: 5299, Discount: 19, Description: "22g protein, 6-layer protein matrix, ultra-premium blend", Rating: 4.7, Reviews: 734, InStock: true, Brand: "BSN"},
	{ID: 5, Name: "Dymatize ISO100 Hydrolyzed Protein", Category: "protein", Price: 3899, OriginalPrice: 4799, Discount: 19, Description: "25g hydrolyzed protein, 5.5g BCAAs, zero lactose", Rating: 4.9, Reviews: 1023, InStock: true, Brand: "Dymatize"},
	{ID: 6, Name: "Optimum Nutrition Creatine Monohydrate", Category: "supplements", Price: 899, OriginalPrice: 1199, Discount: 25, Description: "5g creatine per serving, increases strength and power", Rating: 4.8, Reviews: 2156, InStock: true, Brand: "Optimum Nutrition"},
	{ID: 7, Name: "MyProtein BCAA 2:1:1 Powder", Category: "supplements", Price: 1299, OriginalPrice: 1699, Discount: 24, Description: "Essential amino acids for muscle recovery and growth", Rating: 4.5, Reviews: 892, InStock: true, Brand: "MyProtein"},
	{ID: 8, Name: "MuscleTech NitroTech Pre-Workout", Category: "supplements", Price: 2499, OriginalPrice: 3199, Discount: 22, Description: "Advanced pre-workout with creatine, BCAAs, and caffeine", Rating: 4.6, Reviews: 445, InStock: true, Brand: "MuscleTech"},
	{ID: 9, Name: "BSN N.O.-XPLODE Pre-Workout", Category: "supplements", Price: 2199, OriginalPrice: 2799, Discount: 21, Description: "Nitric oxide booster with energy blend and focus matrix", Rating: 4.4, Reviews: 678, InStock: true, Brand: "BSN"},
	{ID: 10, Name: "Dymatize Super Mass Gainer", Category: "supplements", Price: 3299, OriginalPrice: 4199, Discount: 21, Description: "52g protein, 252g carbs, perfect for weight gain", Rating: 4.7, Reviews: 567, InStock: true, Brand: "Dymatize"},
	{ID: 11, Name: "Bowflex SelectTech 552 Adjustable Dumbbells", Category: "equipment", Price: 15999, OriginalPrice: 19999, Discount: 20, Description: "Adjustable from 5-52.5 lbs, space-saving design", Rating: 4.9, Reviews: 1234, InStock: true, Brand: "Bowflex"},
	{ID: 12, Name: "CAP Barbell Olympic Weight Set", Category: "equipment", Price: 8999, OriginalPrice: 11999, Discount: 25, Description: "300 lbs total weight, includes bar, plates, and collars", Rating: 4.6, Reviews: 789, InStock: true, Brand: "CAP Barbell"},
	{ID: 13, Name: "Concept2 Model D Indoor Rowing Machine", Category: "equipment", Price: 89999, OriginalPrice: 99999, Discount: 10, Description: "Professional rowing machine with performance monitor", Rating: 4.9, Reviews: 456, InStock: true, Brand: "Concept2"},
	{ID: 14, Name: "TRX Suspension Trainer Pro", Category: "equipment", Price: 3999, OriginalPrice: 4999, Discount: 20, Description: "Full-body suspension training system, portable", Rating: 4.7, Reviews: 892, InStock: true, Brand: "TRX"},
	{ID: 15, Name: "Lululemon Yoga Mat Premium", Category: "equipment", Price: 2499, OriginalPrice: 2999, Discount: 17, Description: "5mm thick, non-slip surface, perfect for yoga and pilates", Rating: 4.8, Reviews: 1234, InStock: true, Brand: "Lululemon"},
	{ID: 16, Name: "Nike Dri-FIT Training T-Shirt", Category: "clothing", Price: 1499, OriginalPrice: 1999, Discount: 25, Description: "Moisture-wicking fabric, breathable, comfortable fit", Rating: 4.6, Reviews: 567, InStock: true, Brand: "Nike"},
	{ID: 17, Name: "Adidas Performance Training Shorts", Category: "clothing", Price: 1299, OriginalPrice: 1699, Discount: 24, Description: "Lightweight, quick-dry, built-in liner", Rating: 4.5, Reviews: 445, InStock: true, Brand: "Adidas"},
	{ID: 18, Name: "Under Armour HeatGear Leggings", Category: "clothing", Price: 1899, OriginalPrice: 2499, Discount: 24, Description: "Compression fit, moisture-wicking, 4-way stretch", Rating: 4.7, Reviews: 678, InStock: true, Brand: "Under Armour"},
	{ID: 19, Name: "Lululemon Align High-Rise Pants", Category: "clothing", Price: 3999, OriginalPrice: 4999, Discount: 20, Description: "Buttery-soft fabric, high-rise, perfect for yoga", Rating: 4.9, Reviews: 1234, InStock: true, Brand: "Lululemon"},
	{ID: 20, Name: "Gymshark Flex Leggings", Category: "clothing", Price: 2499, OriginalPrice: 3199, Discount: 22, Description: "Seamless design, squat-proof, comfortable waistband", Rating: 4.6, Reviews: 892, InStock: true, Brand: "Gymshark"},
	{ID: 21, Name: "Fitbit Charge 5 Fitness Tracker", Category: "accessories", Price: 8999, OriginalPrice: 11999, Discount: 25, Description: "Heart rate monitor, GPS, sleep tracking, 7-day battery", Rating: 4.7, Reviews: 1456, InStock: true, Brand: "Fitbit"},
	{ID: 22, Name: "Apple Watch Series 8", Category: "accessories", Price: 39999, OriginalPrice: 44999, Discount: 11, Description: "Advanced health monitoring, GPS, cellular option", Rating: 4.9, Reviews: 2345, InStock: true, Brand: "Apple"},
	{ID: 23, Name: "Shaker Bottle with Mixing Ball", Category: "accessories", Price: 399, OriginalPrice: 599, Discount: 33, Description: "32oz capacity, leak-proof, easy to clean", Rating: 4.5, Reviews: 1234, InStock: true, Brand: "Generic"},
	{ID: 24, Name: "Lifting Straps Premium Leather", Category: "accessories", Price: 799, OriginalPrice: 999, Discount: 20, Description: "Heavy-duty leather, wrist support, adjustable", Rating: 4.6, Reviews: 567, InStock: true, Brand: "Generic"},
	{ID: 25, Name: "Foam Roller High Density", Category: "accessories", Price: 599, OriginalPrice: 799, Discount: 25, Description: "36-inch length, muscle recovery, myofascial release", Rating: 4.4, Reviews: 789, InStock: true, Brand: "Generic"},
	{ID: 26, Name: "MuscleTech NitroTech Whey Gold", Category: "protein", Price: 2899, OriginalPrice: 3699, Discount: 22, Description: "30g protein, 6.8g BCAAs, creatine monohydrate", Rating: 4.6, Reviews: 445, InStock: true, Brand: "MuscleTech"},
	{ID: 27, Name: "BSN True-Mass Weight Gainer", Category: "protein", Price: 2799, OriginalPrice: 3599, Discount: 22, Description: "700 calories, 46g protein, 85g carbs per serving", Rating: 4.5, Reviews: 678, InStock: true, Brand: "BSN"},
	{ID: 28, Name: "Dymatize Elite Casein Protein", Category: "protein", Price: 2499, OriginalPrice: 3199, Discount: 22, Description: "Slow-release protein, perfect for overnight recovery", Rating: 4.7, Reviews: 567, InStock: true, Brand: "Dymatize"},
	{ID: 29, Name: "Optimum Nutrition Fish Oil Omega-3", Category: "supplements", Price: 699, OriginalPrice: 899, Discount: 22, Description: "1000mg fish oil, 300mg EPA, 200mg DHA", Rating: 4.6, Reviews: 892, InStock: true, Brand: "Optimum Nutrition"},
	{ID: 30, Name: "MyProtein Vitamin D3 4000IU", Category: "supplements", Price: 399, OriginalPrice: 599, Discount: 33, Description: "High-strength vitamin D, bone health, immunity", Rating: 4.5, Reviews: 1234, InStock: true, Brand: "MyProtein"},
	{ID: 31, Name: "Bowflex Max Trainer M6", Category: "equipment", Price: 79999, OriginalPrice: 99999, Discount: 20, Description: "Hybrid cardio machine, low-impact, high-intensity", Rating: 4.8, Reviews: 234, InStock: true, Brand: "Bowflex"},
	{ID: 32, Name: "CAP Barbell Power Rack", Category: "equipment", Price: 15999, OriginalPrice: 19999, Discount: 20, Description: "Full power rack with pull-up bar, safety pins", Rating: 4.7, Reviews: 345, InStock: true, Brand: "CAP Barbell"},
	{ID: 33, Name: "Nike Metcon 7 Training Shoes", Category: "clothing", Price: 8999, OriginalPrice: 11999, Discount: 25, Description: "CrossFit shoes, stable for lifting, flexible for cardio", Rating: 4.8, Reviews: 567, InStock: true, Brand: "Nike"},
	{ID: 34, Name: "Adidas Ultraboost 22 Running Shoes", Category: "clothing", Price: 12999, OriginalPrice: 15999, Discount: 19, Description: "Energy-returning boost midsole, responsive cushioning", Rating: 4.9, Reviews: 1234, InStock: true, Brand: "Adidas"},
	{ID: 35, Name: "Garmin Fenix 7 GPS Watch", Category: "accessories", Price: 59999, OriginalPrice: 69999, Discount: 14, Description: "Multisport GPS watch, advanced training metrics", Rating: 4.9, Reviews: 456, InStock: true, Brand: "Garmin"},
	{ID: 36, Name: "Resistance Bands Set (5 bands)", Category: "accessories", Price: 799, OriginalPrice: 1199, Discount: 33, Description: "5-50 lbs resistance, portable, versatile training", Rating: 4.5, Reviews: 892, InStock: true, Brand: "Generic"},
	{ID: 37, Name: "MuscleBlaze Creatine Monohydrate", Category: "supplements", Price: 599, OriginalPrice: 799, Discount: 25, Description: "Pure creatine monohydrate, 5g per serving", Rating: 4.4, Reviews: 567, InStock: true, Brand: "MuscleBlaze"},
	{ID: 38, Name: "Lululemon Energy Bra", Category: "clothing", Price: 2499, OriginalPrice: 3199, Discount: 22, Description: "High-support sports bra, moisture-wicking fabric", Rating: 4.7, Reviews: 789, InStock: true, Brand: "Lululemon"},
	{ID: 39, Name: "Bowflex SelectTech 1090 Adjustable Dumbbells", Category: "equipment", Price: 29999, OriginalPrice: 39999, Discount: 25, Description: "Adjustable from 10-90 lbs, premium build quality", Rating: 4.9, Reviews: 234, InStock: true, Brand: "Bowflex"},
	{ID: 40, Name: "Samsung Galaxy Watch 5", Category: "accessories", Price: 24999, OriginalPrice: 29999, Discount: 17, Description: "Advanced health monitoring, GPS, long battery life", Rating: 4.7, Reviews: 678, InStock: true, Brand: "Samsung"},
	{ID: 41, Name: "Optimum Nutrition Amino Energy", Category: "supplements", Price: 1499, OriginalPrice: 1999, Discount: 25, Description: "BCAAs with energy blend, 160mg caffeine", Rating: 4.6, Reviews: 445, InStock: true, Brand: "Optimum Nutrition"},
	{ID: 42, Name: "Gymshark Vital Seamless 2.0", Category: "clothing", Price: 1899, OriginalPrice: 2499, Discount: 24, Description: "Seamless design, squat-proof, comfortable fit", Rating: 4.5, Reviews: 567, InStock: true, Brand: "Gymshark"},
	{ID: 43, Name: "CAP Barbell EZ Curl Bar", Category: "equipment", Price: 1999, OriginalPrice: 2499, Discount: 20, Description: "Olympic curl bar, comfortable grip, 45 lbs weight", Rating: 4.6, Reviews: 234, InStock: true, Brand: "CAP Barbell"},
	{ID: 44, Name: "Lacrosse Ball Set (2 balls)", Category: "accessories", Price: 299, OriginalPrice: 399, Discount: 25, Description: "Trigger point therapy, myofascial release", Rating: 4.4, Reviews: 345, InStock: true, Brand: "Generic"},
	{ID: 45, Name: "MyProtein Impact Whey Protein (5kg)", Category: "protein", Price: 4999, OriginalPrice: 6999, Discount: 29, Description: "Bulk size, 21g protein per serving, great value", Rating: 4.7, Reviews: 892, InStock: true, Brand: "MyProtein"},
}

// Products returns a copy of the seeded shop catalog.
func Products() []models.Product {
	out := make([]models.Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}
