package generator

type stateInfo struct {
	Code    string
	Cities  []string
	Pattern string
}

// license number pattern alphabet; I, O and Q are never issued
const patternLetters = "ABCDEFGHJKLMNPRSTUVWXYZ"

const middleLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
	"Matthew", "Margaret", "Anthony", "Betty", "Donald", "Sandra", "Mark", "Ashley",
	"Paul", "Dorothy", "Steven", "Kimberly", "Andrew", "Emily", "Kenneth", "Donna",
	"Joshua", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Edward", "Deborah", "Ronald", "Stephanie", "Timothy", "Rebecca", "Jason", "Laura",
	"Jeffrey", "Helen", "Ryan", "Sharon", "Jacob", "Cynthia", "Gary", "Kathleen",
	"Nicholas", "Amy", "Eric", "Shirley", "Jonathan", "Angela", "Stephen", "Anna",
	"Larry", "Ruth", "Justin", "Brenda", "Scott", "Pamela", "Brandon", "Nicole",
	"Benjamin", "Katherine", "Samuel", "Emma", "Gregory", "Samantha", "Frank", "Christine",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
	"Collins", "Edwards", "Stewart", "Flores", "Morris", "Morales", "Murphy", "Cook",
	"Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey", "Reed",
	"Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Brooks", "Gray", "James",
}

// states lists the issuing states with their cities and number patterns.
// In a pattern '#' is a digit, 'A' and 'B' are letters, anything else is
// copied as is.
var states = []stateInfo{
	{"CA", []string{"Los Angeles", "San Diego", "San Jose", "San Francisco", "Fresno"}, "F#######"},
	{"TX", []string{"Houston", "San Antonio", "Dallas", "Austin", "Fort Worth"}, "#########"},
	{"FL", []string{"Jacksonville", "Miami", "Tampa", "Orlando", "St. Petersburg"}, "A######B"},
	{"NY", []string{"New York", "Buffalo", "Rochester", "Yonkers", "Syracuse"}, "########"},
	{"IL", []string{"Chicago", "Aurora", "Naperville", "Joliet", "Rockford"}, "A#########"},
	{"PA", []string{"Philadelphia", "Pittsburgh", "Allentown", "Erie", "Reading"}, "##-###-###"},
	{"OH", []string{"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron"}, "A######"},
	{"GA", []string{"Atlanta", "Augusta", "Columbus", "Macon", "Savannah"}, "#########"},
	{"MI", []string{"Detroit", "Grand Rapids", "Warren", "Sterling Heights", "Ann Arbor"}, "A######"},
	{"NC", []string{"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem"}, "#########"},
	{"WA", []string{"Seattle", "Spokane", "Tacoma", "Vancouver", "Bellevue"}, "WDL######"},
	{"NJ", []string{"Newark", "Jersey City", "Paterson", "Elizabeth", "Edison"}, "A##-##-###"},
	{"MA", []string{"Boston", "Worcester", "Springfield", "Lowell", "Cambridge"}, "S#########"},
	{"AZ", []string{"Phoenix", "Tucson", "Mesa", "Chandler", "Glendale"}, "A#######"},
	{"VA", []string{"Virginia Beach", "Norfolk", "Chesapeake", "Richmond", "Newport News"}, "A######"},
	{"CO", []string{"Denver", "Colorado Springs", "Aurora", "Fort Collins", "Lakewood"}, "A#######"},
	{"IN", []string{"Indianapolis", "Fort Wayne", "Evansville", "South Bend", "Carmel"}, "#########"},
	{"MN", []string{"Minneapolis", "Saint Paul", "Rochester", "Duluth", "Bloomington"}, "A######"},
	{"TN", []string{"Nashville", "Memphis", "Knoxville", "Chattanooga", "Clarksville"}, "#########"},
	{"MO", []string{"Kansas City", "Saint Louis", "Springfield", "Columbia", "Independence"}, "A##-##-###"},
}

var streets = []string{
	"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine St", "Elm St",
	"Washington Ave", "Park Blvd", "Lake View", "Hill St", "River Rd",
}

var (
	eyeColors  = []string{"BRO", "BLU", "GRN", "HAZ", "GRY"}
	hairColors = []string{"BRO", "BLK", "BLN", "RED", "GRY"}

	// weighted toward class C
	licenseClasses = []string{"C", "D", "C", "C", "C", "M", "B"}
	restrictions   = []string{"NONE", "A", "B", "A,B", "NONE", "NONE", "F"}
	// weighted toward YES
	organDonor = []string{"YES", "NO", "YES", "YES"}

	validityYears = []int{4, 5, 6}
)
