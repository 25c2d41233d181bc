package premium

// Static city tier membership. Matching is exact and case-sensitive; a
// city in neither list is tier 3.
var tier1Cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune",
}

var tier2Cities = []string{
	"Jaipur", "Chandigarh", "Indore", "Lucknow", "Patna", "Ranchi", "Visakhapatnam", "Coimbatore",
	"Bhopal", "Nagpur", "Vadodara", "Surat", "Rajkot", "Jodhpur", "Raipur", "Amritsar", "Varanasi",
	"Agra", "Dehradun", "Mysore", "Jabalpur", "Guwahati", "Thiruvananthapuram", "Ludhiana", "Nashik",
	"Allahabad", "Udaipur", "Aurangabad", "Hubli", "Belgaum", "Salem", "Vijayawada", "Tiruchirappalli",
	"Bhavnagar", "Gwalior", "Dhanbad", "Bareilly", "Aligarh", "Gaya", "Kozhikode", "Warangal",
	"Kolhapur", "Bilaspur", "Jalandhar", "Noida", "Guntur", "Asansol", "Siliguri",
}

var (
	tier1 = toSet(tier1Cities)
	tier2 = toSet(tier2Cities)
)

func toSet(cities []string) map[string]struct{} {
	s := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		s[c] = struct{}{}
	}
	return s
}

// CityTier classifies a city into tier 1, 2 or 3.
func CityTier(city string) int {
	if _, ok := tier1[city]; ok {
		return 1
	}
	if _, ok := tier2[city]; ok {
		return 2
	}
	return 3
}
