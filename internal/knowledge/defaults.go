package knowledge

// defaultFacilities is the built-in campus directory. Order matters: bare
// keyword lookups return the first facility mentioned in this order.
var defaultFacilities = []Facility{
	{
		Key:      "library",
		Name:     "library",
		Location: "Building A, first floor",
		Hours:    "9:00 AM to 6:00 PM",
		Details:  "It's right across from the student center. Would you like directions?",
		Responses: []string{
			"The main library is located in Building A, first floor. It's right across from the student center. It's open from 9:00 AM to 6:00 PM. Would you like directions?",
			"You'll find our library in Building A. Just enter through the main doors and you can't miss it! It's open from 9:00 AM to 6:00 PM. Need help finding it?",
			"The library is in Building A, with study rooms on both floors. The quiet study area is on the second floor, and it's open from 9:00 AM to 6:00 PM. Would you like to know more about our facilities?",
		},
	},
	{
		Key:      "cafeteria",
		Name:     "cafeteria",
		Aliases:  []string{"dining hall"},
		Location: "Student Center, ground floor",
		Hours:    "7:30 AM to 8:00 PM",
		Details:  "It offers multiple food stations. Need today's menu?",
		Responses: []string{
			"The main cafeteria is in the Student Center, ground floor. It's open from 7:30 AM to 8:00 PM and offers multiple food stations. Need today's menu?",
			"Our cafeteria is located in the Student Center. Just follow the signs from the main entrance. It's open from 7:30 AM to 8:00 PM and they're serving some great options today!",
			"You can find the cafeteria in the Student Center, open from 7:30 AM to 8:00 PM. There's also a coffee shop nearby. Would you like to know about our meal plans?",
		},
	},
	{
		Key:      "coffee",
		Name:     "coffee shop",
		Aliases:  []string{"coffee shop", "coffee bar"},
		Location: "Student Center, next to the cafeteria",
		Hours:    "8:00 AM to 5:00 PM",
		Details:  "They make amazing lattes! Want to know about their specials?",
		Responses: []string{
			"The coffee shop is right next to the cafeteria in the Student Center. They make amazing lattes! It's open from 8:00 AM to 5:00 PM.",
			"Looking for coffee? Head to the Student Center - the coffee shop is right by the main entrance and open from 8:00 AM to 5:00 PM. Their cold brew is fantastic!",
			"Our coffee shop is in the Student Center, near the study area, open from 8:00 AM to 5:00 PM. They have student discounts too! Want to know about their specials?",
		},
	},
	{
		Key:      "gym",
		Name:     "gym",
		Aliases:  []string{"fitness center", "athletics building"},
		Location: "Athletics Building, behind the Student Center",
		Hours:    "6:00 AM to 10:00 PM",
		Details:  "It's equipped with modern facilities. Would you like to know about membership?",
		Responses: []string{
			"The gym is located in the Athletics Building, which is behind the Student Center. It's equipped with modern facilities and open from 6:00 AM to 10:00 PM.",
			"Our gym is in the Athletics Building, open from 6:00 AM to 10:00 PM. You can't miss it - it's the big building with the blue roof! Would you like to know about membership?",
			"The gym facilities are in the Athletics Building, open from 6:00 AM to 10:00 PM. We have a weight room, cardio area, and group fitness classes. Need more details?",
		},
	},
	{
		Key:      "parking",
		Name:     "parking",
		Aliases:  []string{"parking lot", "parking permit"},
		Location: "Lots A, B, and C",
		Hours:    "Open 24/7",
		Details:  "Lot A is closest to the main building, while B and C are near the Athletics Building. Need a parking map?",
		Responses: []string{
			"Student parking is available in Lots A, B, and C, open 24/7. Lot A is closest to the main building, while B and C are near the Athletics Building. Need a parking map?",
			"We have three main parking lots, open 24/7: A (near main building), B and C (near Athletics). Parking permits are required. Would you like permit information?",
			"Parking Lots A, B, and C are available for students and are open 24/7. The closest one to the main building is Lot A. Need directions?",
		},
	},
	{
		Key:      "bookstore",
		Name:     "bookstore",
		Aliases:  []string{"book store", "textbook"},
		Location: "Building B, ground floor",
		Hours:    "9:00 AM to 5:00 PM",
		Details:  "They have all your textbook needs plus university merchandise!",
		Responses: []string{
			"The campus bookstore is on the ground floor of Building B, next to the Student Center. It's open from 9:00 AM to 5:00 PM with all your textbook needs plus university merchandise!",
			"You'll find our bookstore in Building B. It's open Monday to Friday, 9:00 AM to 5:00 PM. Need to know what textbooks you need?",
			"The bookstore is located in Building B, ground floor, open from 9:00 AM to 5:00 PM. They offer new, used, and rental options for textbooks. Want to know about their return policy?",
		},
	},
	{
		Key:      "administration",
		Name:     "administration office",
		Aliases:  []string{"admissions", "registrar", "financial aid"},
		Location: "Building C, second floor",
		Hours:    "9:00 AM to 5:00 PM",
		Details:  "This includes Admissions, Financial Aid, and the Registrar's office. Need specific directions?",
		Responses: []string{
			"The administration offices are in Building C, second floor, open from 9:00 AM to 5:00 PM. This includes Admissions, Financial Aid, and the Registrar's office. Need specific directions?",
			"All administration services are centralized in Building C, second floor, from 9:00 AM to 5:00 PM. The elevators are right by the main entrance. What services do you need?",
			"Building C houses our administration offices, open from 9:00 AM to 5:00 PM. You can handle most administrative tasks there. Would you like to know more?",
		},
	},
}
