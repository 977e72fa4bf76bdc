package catalog

import contractx "github.com/voyplan/voyplan/agent/contract"

var hangzhouAttractions = []contractx.Attraction{
	{
		ID:            "attr_west_lake",
		Name:          "West Lake",
		City:          "Hangzhou",
		Category:      []string{"nature", "culture", "history"},
		Rating:        4.8,
		TicketPrice:   0,
		DurationHours: 3,
		Address:       "West Lake Scenic Area, Xihu District",
		Description:   "Hangzhou's signature lake, famed for its misty hills and lakeside pagodas. A UNESCO World Heritage site, beautiful in every season.",
		Tags:          []string{"must-see", "free", "photogenic"},
	},
	{
		ID:            "attr_lingyin",
		Name:          "Lingyin Temple",
		City:          "Hangzhou",
		Category:      []string{"culture", "history", "religion"},
		Rating:        4.7,
		TicketPrice:   75,
		DurationHours: 2.5,
		Address:       "1 Fayun Lane, Lingyin Road, Xihu District",
		Description:   "One of the great Chan Buddhist temples of the south, founded some 1700 years ago and set among ancient trees.",
		Tags:          []string{"must-see", "heritage"},
	},
	{
		ID:            "attr_qiandao",
		Name:          "Qiandao Lake",
		City:          "Hangzhou",
		Category:      []string{"nature"},
		Rating:        4.7,
		TicketPrice:   150,
		DurationHours: 6,
		Address:       "Qiandaohu Town, Chun'an County",
		Description:   "A vast reservoir dotted with a thousand islands, clear water and boat tours.",
		Tags:          []string{"day-trip", "boating"},
	},
	{
		ID:            "attr_xixi",
		Name:          "Xixi Wetland",
		City:          "Hangzhou",
		Category:      []string{"nature"},
		Rating:        4.6,
		TicketPrice:   80,
		DurationHours: 4,
		Address:       "518 Tianmushan Road, Xihu District",
		Description:   "China's first national wetland park, best explored by boat through its quiet waterways.",
		Tags:          []string{"eco", "relaxing"},
	},
	{
		ID:            "attr_feilai",
		Name:          "Feilai Peak",
		City:          "Hangzhou",
		Category:      []string{"nature", "history"},
		Rating:        4.6,
		TicketPrice:   45,
		DurationHours: 2,
		Address:       "Lingyin Road, Xihu District",
		Description:   "Limestone peak beside Lingyin Temple, carved with hundreds of Buddhist grotto figures.",
		Tags:          []string{"heritage", "grottoes"},
	},
	{
		ID:            "attr_museum",
		Name:          "Hangzhou Museum",
		City:          "Hangzhou",
		Category:      []string{"culture", "history"},
		Rating:        4.6,
		TicketPrice:   0,
		DurationHours: 2,
		Address:       "18 Liangdaoshan, Shangcheng District",
		Description:   "The city's history museum, strong on local artifacts. Closed Mondays.",
		Tags:          []string{"free", "rainy-day"},
	},
	{
		ID:            "attr_leifeng",
		Name:          "Leifeng Pagoda",
		City:          "Hangzhou",
		Category:      []string{"culture", "history"},
		Rating:        4.5,
		TicketPrice:   40,
		DurationHours: 1.5,
		Address:       "15 Nanshan Road, Xihu District",
		Description:   "One of the Ten Scenes of West Lake, tied to the Legend of the White Snake. The top deck overlooks the whole lake.",
		Tags:          []string{"photogenic", "legend"},
	},
	{
		ID:            "attr_songcheng",
		Name:          "Songcheng Park",
		City:          "Hangzhou",
		Category:      []string{"culture", "entertainment"},
		Rating:        4.5,
		TicketPrice:   310,
		DurationHours: 4,
		Address:       "148 Zhijiang Road, Xihu District",
		Description:   "Song-dynasty theme park, best known for its large-scale evening show.",
		Tags:          []string{"show", "family"},
	},
	{
		ID:            "attr_longjing",
		Name:          "Longjing Village",
		City:          "Hangzhou",
		Category:      []string{"food", "nature"},
		Rating:        4.5,
		TicketPrice:   0,
		DurationHours: 2.5,
		Address:       "Longjing Road, Xihu District",
		Description:   "Home of Longjing (Dragon Well) tea. Walk the terraced tea fields and sit down for a tasting.",
		Tags:          []string{"free", "tea"},
	},
	{
		ID:            "attr_hefang",
		Name:          "Hefang Street",
		City:          "Hangzhou",
		Category:      []string{"food", "culture", "history"},
		Rating:        4.4,
		TicketPrice:   0,
		DurationHours: 2,
		Address:       "Hefang Street, Shangcheng District",
		Description:   "Late-Qing era shopping street packed with snack stalls and craft shops, lively after dark.",
		Tags:          []string{"free", "street-food", "night"},
	},
}

var hangzhouRestaurants = []contractx.Restaurant{
	{
		ID:              "food_louwailou",
		Name:            "Lou Wai Lou",
		City:            "Hangzhou",
		CuisineType:     "Hangzhou cuisine",
		Rating:          4.7,
		AvgPrice:        150,
		SignatureDishes: []string{"West Lake vinegar fish", "Beggar's chicken", "Sister Song's fish soup"},
		Description:     "Century-old house on the lakeshore, the classic place for proper Hangzhou cooking.",
		Tags:            []string{"must-eat", "heritage", "lake-view"},
	},
	{
		ID:              "food_grandma",
		Name:            "Grandma's Home (Hubin)",
		City:            "Hangzhou",
		CuisineType:     "Hangzhou cuisine",
		Rating:          4.6,
		AvgPrice:        80,
		SignatureDishes: []string{"West Lake vinegar fish", "Longjing shrimp", "Dongpo pork"},
		Description:     "Popular local chain with generous portions and honest prices.",
		Tags:            []string{"must-eat", "good-value"},
	},
	{
		ID:              "food_green_tea",
		Name:            "Green Tea Restaurant (Longjing)",
		City:            "Hangzhou",
		CuisineType:     "modern Hangzhou cuisine",
		Rating:          4.6,
		AvgPrice:        90,
		SignatureDishes: []string{"Bread temptation", "Green-tea roasted fish", "Stone-pot bullfrog"},
		Description:     "Creative take on local dishes in a fresh garden setting.",
		Tags:            []string{"trendy", "creative"},
	},
	{
		ID:              "food_xinbailu",
		Name:            "Xin Bai Lu",
		City:            "Hangzhou",
		CuisineType:     "Hangzhou cuisine",
		Rating:          4.6,
		AvgPrice:        85,
		SignatureDishes: []string{"Soy-braised duck", "Sweet and sour pork", "Braised spring bamboo"},
		Description:     "Local favourite chain, big plates at fair prices.",
		Tags:            []string{"good-value", "local-pick"},
	},
	{
		ID:              "food_zhiweiguan",
		Name:            "Zhiweiguan (Hubin)",
		City:            "Hangzhou",
		CuisineType:     "snacks",
		Rating:          4.5,
		AvgPrice:        60,
		SignatureDishes: []string{"Cat's ear pasta", "Pork soup dumplings", "Pian'erchuan noodles"},
		Description:     "Famous snack house serving traditional Hangzhou dim sum and noodles.",
		Tags:            []string{"must-eat", "heritage", "breakfast"},
	},
	{
		ID:              "food_kuiyuanguan",
		Name:            "Kuiyuanguan",
		City:            "Hangzhou",
		CuisineType:     "noodles",
		Rating:          4.5,
		AvgPrice:        40,
		SignatureDishes: []string{"Shrimp and eel noodles", "Pian'erchuan noodles"},
		Description:     "Century-old noodle shop beloved by locals.",
		Tags:            []string{"heritage", "noodles", "breakfast"},
	},
	{
		ID:              "food_huqingyu",
		Name:            "Huqingyutang Medicinal Kitchen",
		City:            "Hangzhou",
		CuisineType:     "medicinal cuisine",
		Rating:          4.4,
		AvgPrice:        120,
		SignatureDishes: []string{"Cordyceps chicken soup", "Herbal pork ribs", "Wellness congee"},
		Description:     "Dining room of the old apothecary, cooking built around wellness.",
		Tags:            []string{"distinctive", "wellness"},
	},
	{
		ID:              "food_yujie",
		Name:            "Southern Song Imperial Street Snacks",
		City:            "Hangzhou",
		CuisineType:     "snacks",
		Rating:          4.3,
		AvgPrice:        35,
		SignatureDishes: []string{"Dingsheng cake", "Congbaokuai", "Stinky tofu"},
		Description:     "Strip of traditional snack stalls, cheap and made for grazing on foot.",
		Tags:            []string{"street-food", "cheap"},
	},
}

var hangzhouHotels = []contractx.Hotel{
	{
		ID:            "hotel_state_guest",
		Name:          "West Lake State Guest House",
		City:          "Hangzhou",
		HotelType:     "luxury",
		Rating:        4.8,
		PricePerNight: 980,
		RoomType:      "deluxe king",
		Address:       "18 Yanggong Causeway, Xihu District",
		Facilities:    []string{"wifi", "breakfast", "parking", "gym", "pool", "spa"},
		Description:   "Five-star retreat on the lake shore with gardens down to the water.",
		Tags:          []string{"five-star", "lake-view"},
	},
	{
		ID:            "hotel_liuyingli",
		Name:          "Liuyingli Hotel",
		City:          "Hangzhou",
		HotelType:     "luxury",
		Rating:        4.7,
		PricePerNight: 750,
		RoomType:      "lake-view king",
		Address:       "107 Beishan Street, Xihu District",
		Facilities:    []string{"wifi", "breakfast", "parking", "gym"},
		Description:   "Boutique house right by West Lake, rooms with a view.",
		Tags:          []string{"boutique", "lake-view"},
	},
	{
		ID:            "hotel_new_century",
		Name:          "New Century Grand Hotel",
		City:          "Hangzhou",
		HotelType:     "comfort",
		Rating:        4.6,
		PricePerNight: 480,
		RoomType:      "business twin",
		Address:       "78 Qingchun Road, Shangcheng District",
		Facilities:    []string{"wifi", "breakfast", "parking", "gym", "meeting-rooms"},
		Description:   "Four-star business hotel in the city centre, well connected.",
		Tags:          []string{"business", "central"},
	},
	{
		ID:            "hotel_atour",
		Name:          "Atour Hotel (West Lake)",
		City:          "Hangzhou",
		HotelType:     "comfort",
		Rating:        4.6,
		PricePerNight: 420,
		RoomType:      "comfort king",
		Address:       "58 Beishan Street, Xihu District",
		Facilities:    []string{"wifi", "breakfast", "gym", "library", "afternoon-tea"},
		Description:   "Modern lifestyle hotel a short walk from the lake, known for service.",
		Tags:          []string{"lifestyle", "near-lake"},
	},
	{
		ID:            "hotel_ji",
		Name:          "Ji Hotel (West Lake Cultural Square)",
		City:          "Hangzhou",
		HotelType:     "comfort",
		Rating:        4.5,
		PricePerNight: 350,
		RoomType:      "queen room",
		Address:       "318 Zhongshan North Road, Xiacheng District",
		Facilities:    []string{"wifi", "breakfast", "gym"},
		Description:   "Mid-range chain with clean modern rooms next to the metro.",
		Tags:          []string{"near-metro", "good-value"},
	},
	{
		ID:            "hotel_home_inn",
		Name:          "Home Inn (West Lake)",
		City:          "Hangzhou",
		HotelType:     "budget",
		Rating:        4.3,
		PricePerNight: 220,
		RoomType:      "standard twin",
		Address:       "178 Tiyuchang Road, Xihu District",
		Facilities:    []string{"wifi", "breakfast"},
		Description:   "Clean budget chain within walking distance of West Lake.",
		Tags:          []string{"budget", "near-lake"},
	},
	{
		ID:            "hotel_hanting",
		Name:          "Hanting Hotel (Wulin Square)",
		City:          "Hangzhou",
		HotelType:     "budget",
		Rating:        4.2,
		PricePerNight: 200,
		RoomType:      "standard twin",
		Address:       "123 Wulin Road, Xiacheng District",
		Facilities:    []string{"wifi", "breakfast"},
		Description:   "Budget rooms in the Wulin shopping district.",
		Tags:          []string{"budget", "shopping"},
	},
	{
		ID:            "hotel_jinjiang",
		Name:          "Jinjiang Inn (Hefang Street)",
		City:          "Hangzhou",
		HotelType:     "budget",
		Rating:        4.1,
		PricePerNight: 180,
		RoomType:      "standard twin",
		Address:       "267 Hefang Street, Shangcheng District",
		Facilities:    []string{"wifi"},
		Description:   "Cheapest solid option, right on the old snack street.",
		Tags:          []string{"budget", "old-town"},
	},
}
