package atlas

// Catalog is the complete compiled-in world dataset: 196 countries with
// capital, flag code, continent, region, and familiarity tier. Data, not
// logic; the derived lookup structures live in Index.
var Catalog = []Country{
	// Africa
	{Name: "Algeria", Capital: "Algiers", FlagCode: "dz", Continent: Africa, Region: "North Africa", Tier: TierMedium},
	{Name: "Angola", Capital: "Luanda", FlagCode: "ao", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Benin", Capital: "Porto-Novo", FlagCode: "bj", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Botswana", Capital: "Gaborone", FlagCode: "bw", Continent: Africa, Region: "Southern Africa", Tier: TierHard},
	{Name: "Burkina Faso", Capital: "Ouagadougou", FlagCode: "bf", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Burundi", Capital: "Gitega", FlagCode: "bi", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Cameroon", Capital: "Yaoundé", FlagCode: "cm", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Cape Verde", Capital: "Praia", FlagCode: "cv", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Central African Republic", Capital: "Bangui", FlagCode: "cf", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Chad", Capital: "N'Djamena", FlagCode: "td", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Comoros", Capital: "Moroni", FlagCode: "km", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Congo", Capital: "Brazzaville", FlagCode: "cg", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Democratic Republic of the Congo", Capital: "Kinshasa", FlagCode: "cd", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Djibouti", Capital: "Djibouti", FlagCode: "dj", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Egypt", Capital: "Cairo", FlagCode: "eg", Continent: Africa, Region: "North Africa", Tier: TierEasy},
	{Name: "Equatorial Guinea", Capital: "Malabo", FlagCode: "gq", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Eritrea", Capital: "Asmara", FlagCode: "er", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Eswatini", Capital: "Mbabane", FlagCode: "sz", Continent: Africa, Region: "Southern Africa", Tier: TierHard},
	{Name: "Ethiopia", Capital: "Addis Ababa", FlagCode: "et", Continent: Africa, Region: "East Africa", Tier: TierMedium},
	{Name: "Gabon", Capital: "Libreville", FlagCode: "ga", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Gambia", Capital: "Banjul", FlagCode: "gm", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Ghana", Capital: "Accra", FlagCode: "gh", Continent: Africa, Region: "West Africa", Tier: TierMedium},
	{Name: "Guinea", Capital: "Conakry", FlagCode: "gn", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Guinea-Bissau", Capital: "Bissau", FlagCode: "gw", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Ivory Coast", Capital: "Yamoussoukro", FlagCode: "ci", Continent: Africa, Region: "West Africa", Tier: TierMedium},
	{Name: "Kenya", Capital: "Nairobi", FlagCode: "ke", Continent: Africa, Region: "East Africa", Tier: TierMedium},
	{Name: "Lesotho", Capital: "Maseru", FlagCode: "ls", Continent: Africa, Region: "Southern Africa", Tier: TierHard},
	{Name: "Liberia", Capital: "Monrovia", FlagCode: "lr", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Libya", Capital: "Tripoli", FlagCode: "ly", Continent: Africa, Region: "North Africa", Tier: TierMedium},
	{Name: "Madagascar", Capital: "Antananarivo", FlagCode: "mg", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Malawi", Capital: "Lilongwe", FlagCode: "mw", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Mali", Capital: "Bamako", FlagCode: "ml", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Mauritania", Capital: "Nouakchott", FlagCode: "mr", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Mauritius", Capital: "Port Louis", FlagCode: "mu", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Morocco", Capital: "Rabat", FlagCode: "ma", Continent: Africa, Region: "North Africa", Tier: TierMedium},
	{Name: "Mozambique", Capital: "Maputo", FlagCode: "mz", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Namibia", Capital: "Windhoek", FlagCode: "na", Continent: Africa, Region: "Southern Africa", Tier: TierHard},
	{Name: "Niger", Capital: "Niamey", FlagCode: "ne", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Nigeria", Capital: "Abuja", FlagCode: "ng", Continent: Africa, Region: "West Africa", Tier: TierEasy},
	{Name: "Rwanda", Capital: "Kigali", FlagCode: "rw", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "São Tomé and Príncipe", Capital: "São Tomé", FlagCode: "st", Continent: Africa, Region: "Central Africa", Tier: TierHard},
	{Name: "Senegal", Capital: "Dakar", FlagCode: "sn", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Seychelles", Capital: "Victoria", FlagCode: "sc", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Sierra Leone", Capital: "Freetown", FlagCode: "sl", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Somalia", Capital: "Mogadishu", FlagCode: "so", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "South Africa", Capital: "Pretoria", FlagCode: "za", Continent: Africa, Region: "Southern Africa", Tier: TierEasy},
	{Name: "South Sudan", Capital: "Juba", FlagCode: "ss", Continent: Africa, Region: "East Africa", Tier: TierHard},
	{Name: "Sudan", Capital: "Khartoum", FlagCode: "sd", Continent: Africa, Region: "North Africa", Tier: TierMedium},
	{Name: "Tanzania", Capital: "Dodoma", FlagCode: "tz", Continent: Africa, Region: "East Africa", Tier: TierMedium},
	{Name: "Togo", Capital: "Lomé", FlagCode: "tg", Continent: Africa, Region: "West Africa", Tier: TierHard},
	{Name: "Tunisia", Capital: "Tunis", FlagCode: "tn", Continent: Africa, Region: "North Africa", Tier: TierMedium},
	{Name: "Uganda", Capital: "Kampala", FlagCode: "ug", Continent: Africa, Region: "East Africa", Tier: TierMedium},
	{Name: "Zambia", Capital: "Lusaka", FlagCode: "zm", Continent: Africa, Region: "Southern Africa", Tier: TierHard},
	{Name: "Zimbabwe", Capital: "Harare", FlagCode: "zw", Continent: Africa, Region: "Southern Africa", Tier: TierHard},

	// Asia
	{Name: "Afghanistan", Capital: "Kabul", FlagCode: "af", Continent: Asia, Region: "South Asia", Tier: TierMedium},
	{Name: "Armenia", Capital: "Yerevan", FlagCode: "am", Continent: Asia, Region: "West Asia", Tier: TierHard},
	{Name: "Azerbaijan", Capital: "Baku", FlagCode: "az", Continent: Asia, Region: "West Asia", Tier: TierHard},
	{Name: "Bahrain", Capital: "Manama", FlagCode: "bh", Continent: Asia, Region: "West Asia", Tier: TierHard},
	{Name: "Bangladesh", Capital: "Dhaka", FlagCode: "bd", Continent: Asia, Region: "South Asia", Tier: TierMedium},
	{Name: "Bhutan", Capital: "Thimphu", FlagCode: "bt", Continent: Asia, Region: "South Asia", Tier: TierHard},
	{Name: "Brunei", Capital: "Bandar Seri Begawan", FlagCode: "bn", Continent: Asia, Region: "Southeast Asia", Tier: TierHard},
	{Name: "Cambodia", Capital: "Phnom Penh", FlagCode: "kh", Continent: Asia, Region: "Southeast Asia", Tier: TierMedium},
	{Name: "China", Capital: "Beijing", FlagCode: "cn", Continent: Asia, Region: "East Asia", Tier: TierEasy},
	{Name: "Cyprus", Capital: "Nicosia", FlagCode: "cy", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Georgia", Capital: "Tbilisi", FlagCode: "ge", Continent: Asia, Region: "West Asia", Tier: TierHard},
	{Name: "India", Capital: "New Delhi", FlagCode: "in", Continent: Asia, Region: "South Asia", Tier: TierEasy},
	{Name: "Indonesia", Capital: "Jakarta", FlagCode: "id", Continent: Asia, Region: "Southeast Asia", Tier: TierEasy},
	{Name: "Iran", Capital: "Tehran", FlagCode: "ir", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Iraq", Capital: "Baghdad", FlagCode: "iq", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Israel", Capital: "Jerusalem", FlagCode: "il", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Japan", Capital: "Tokyo", FlagCode: "jp", Continent: Asia, Region: "East Asia", Tier: TierEasy},
	{Name: "Jordan", Capital: "Amman", FlagCode: "jo", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Kazakhstan", Capital: "Astana", FlagCode: "kz", Continent: Asia, Region: "Central Asia", Tier: TierHard},
	{Name: "Kuwait", Capital: "Kuwait City", FlagCode: "kw", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Kyrgyzstan", Capital: "Bishkek", FlagCode: "kg", Continent: Asia, Region: "Central Asia", Tier: TierHard},
	{Name: "Laos", Capital: "Vientiane", FlagCode: "la", Continent: Asia, Region: "Southeast Asia", Tier: TierMedium},
	{Name: "Lebanon", Capital: "Beirut", FlagCode: "lb", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Malaysia", Capital: "Kuala Lumpur", FlagCode: "my", Continent: Asia, Region: "Southeast Asia", Tier: TierMedium},
	{Name: "Maldives", Capital: "Malé", FlagCode: "mv", Continent: Asia, Region: "South Asia", Tier: TierHard},
	{Name: "Mongolia", Capital: "Ulaanbaatar", FlagCode: "mn", Continent: Asia, Region: "East Asia", Tier: TierHard},
	{Name: "Myanmar", Capital: "Naypyidaw", FlagCode: "mm", Continent: Asia, Region: "Southeast Asia", Tier: TierMedium},
	{Name: "Nepal", Capital: "Kathmandu", FlagCode: "np", Continent: Asia, Region: "South Asia", Tier: TierMedium},
	{Name: "North Korea", Capital: "Pyongyang", FlagCode: "kp", Continent: Asia, Region: "East Asia", Tier: TierMedium},
	{Name: "Oman", Capital: "Muscat", FlagCode: "om", Continent: Asia, Region: "West Asia", Tier: TierHard},
	{Name: "Pakistan", Capital: "Islamabad", FlagCode: "pk", Continent: Asia, Region: "South Asia", Tier: TierMedium},
	{Name: "Palestine", Capital: "Ramallah", FlagCode: "ps", Continent: Asia, Region: "West Asia", Tier: TierHard},
	{Name: "Philippines", Capital: "Manila", FlagCode: "ph", Continent: Asia, Region: "Southeast Asia", Tier: TierMedium},
	{Name: "Qatar", Capital: "Doha", FlagCode: "qa", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Saudi Arabia", Capital: "Riyadh", FlagCode: "sa", Continent: Asia, Region: "West Asia", Tier: TierEasy},
	{Name: "Singapore", Capital: "Singapore", FlagCode: "sg", Continent: Asia, Region: "Southeast Asia", Tier: TierEasy},
	{Name: "South Korea", Capital: "Seoul", FlagCode: "kr", Continent: Asia, Region: "East Asia", Tier: TierEasy},
	{Name: "Sri Lanka", Capital: "Sri Jayawardenepura Kotte", FlagCode: "lk", Continent: Asia, Region: "South Asia", Tier: TierMedium},
	{Name: "Syria", Capital: "Damascus", FlagCode: "sy", Continent: Asia, Region: "West Asia", Tier: TierMedium},
	{Name: "Tajikistan", Capital: "Dushanbe", FlagCode: "tj", Continent: Asia, Region: "Central Asia", Tier: TierHard},
	{Name: "Thailand", Capital: "Bangkok", FlagCode: "th", Continent: Asia, Region: "Southeast Asia", Tier: TierEasy},
	{Name: "Timor-Leste", Capital: "Dili", FlagCode: "tl", Continent: Asia, Region: "Southeast Asia", Tier: TierHard},
	{Name: "Turkey", Capital: "Ankara", FlagCode: "tr", Continent: Asia, Region: "West Asia", Tier: TierEasy},
	{Name: "Turkmenistan", Capital: "Ashgabat", FlagCode: "tm", Continent: Asia, Region: "Central Asia", Tier: TierHard},
	{Name: "United Arab Emirates", Capital: "Abu Dhabi", FlagCode: "ae", Continent: Asia, Region: "West Asia", Tier: TierEasy},
	{Name: "Uzbekistan", Capital: "Tashkent", FlagCode: "uz", Continent: Asia, Region: "Central Asia", Tier: TierHard},
	{Name: "Vietnam", Capital: "Hanoi", FlagCode: "vn", Continent: Asia, Region: "Southeast Asia", Tier: TierMedium},
	{Name: "Yemen", Capital: "Sana'a", FlagCode: "ye", Continent: Asia, Region: "West Asia", Tier: TierHard},

	// Europe
	{Name: "Albania", Capital: "Tirana", FlagCode: "al", Continent: Europe, Region: "Southern Europe", Tier: TierMedium},
	{Name: "Andorra", Capital: "Andorra la Vella", FlagCode: "ad", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Austria", Capital: "Vienna", FlagCode: "at", Continent: Europe, Region: "Central Europe", Tier: TierEasy},
	{Name: "Belarus", Capital: "Minsk", FlagCode: "by", Continent: Europe, Region: "Eastern Europe", Tier: TierMedium},
	{Name: "Belgium", Capital: "Brussels", FlagCode: "be", Continent: Europe, Region: "Western Europe", Tier: TierMedium},
	{Name: "Bosnia and Herzegovina", Capital: "Sarajevo", FlagCode: "ba", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Bulgaria", Capital: "Sofia", FlagCode: "bg", Continent: Europe, Region: "Eastern Europe", Tier: TierMedium},
	{Name: "Croatia", Capital: "Zagreb", FlagCode: "hr", Continent: Europe, Region: "Southern Europe", Tier: TierMedium},
	{Name: "Czech Republic", Capital: "Prague", FlagCode: "cz", Continent: Europe, Region: "Central Europe", Tier: TierMedium},
	{Name: "Denmark", Capital: "Copenhagen", FlagCode: "dk", Continent: Europe, Region: "Northern Europe", Tier: TierMedium},
	{Name: "Estonia", Capital: "Tallinn", FlagCode: "ee", Continent: Europe, Region: "Northern Europe", Tier: TierHard},
	{Name: "Finland", Capital: "Helsinki", FlagCode: "fi", Continent: Europe, Region: "Northern Europe", Tier: TierMedium},
	{Name: "France", Capital: "Paris", FlagCode: "fr", Continent: Europe, Region: "Western Europe", Tier: TierEasy},
	{Name: "Germany", Capital: "Berlin", FlagCode: "de", Continent: Europe, Region: "Central Europe", Tier: TierEasy},
	{Name: "Greece", Capital: "Athens", FlagCode: "gr", Continent: Europe, Region: "Southern Europe", Tier: TierEasy},
	{Name: "Hungary", Capital: "Budapest", FlagCode: "hu", Continent: Europe, Region: "Central Europe", Tier: TierMedium},
	{Name: "Iceland", Capital: "Reykjavik", FlagCode: "is", Continent: Europe, Region: "Northern Europe", Tier: TierMedium},
	{Name: "Ireland", Capital: "Dublin", FlagCode: "ie", Continent: Europe, Region: "Western Europe", Tier: TierMedium},
	{Name: "Italy", Capital: "Rome", FlagCode: "it", Continent: Europe, Region: "Southern Europe", Tier: TierEasy},
	{Name: "Kosovo", Capital: "Pristina", FlagCode: "xk", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Latvia", Capital: "Riga", FlagCode: "lv", Continent: Europe, Region: "Northern Europe", Tier: TierHard},
	{Name: "Liechtenstein", Capital: "Vaduz", FlagCode: "li", Continent: Europe, Region: "Central Europe", Tier: TierHard},
	{Name: "Lithuania", Capital: "Vilnius", FlagCode: "lt", Continent: Europe, Region: "Northern Europe", Tier: TierHard},
	{Name: "Luxembourg", Capital: "Luxembourg", FlagCode: "lu", Continent: Europe, Region: "Western Europe", Tier: TierHard},
	{Name: "Malta", Capital: "Valletta", FlagCode: "mt", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Moldova", Capital: "Chișinău", FlagCode: "md", Continent: Europe, Region: "Eastern Europe", Tier: TierHard},
	{Name: "Monaco", Capital: "Monaco", FlagCode: "mc", Continent: Europe, Region: "Western Europe", Tier: TierHard},
	{Name: "Montenegro", Capital: "Podgorica", FlagCode: "me", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Netherlands", Capital: "Amsterdam", FlagCode: "nl", Continent: Europe, Region: "Western Europe", Tier: TierEasy},
	{Name: "North Macedonia", Capital: "Skopje", FlagCode: "mk", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Norway", Capital: "Oslo", FlagCode: "no", Continent: Europe, Region: "Northern Europe", Tier: TierMedium},
	{Name: "Poland", Capital: "Warsaw", FlagCode: "pl", Continent: Europe, Region: "Central Europe", Tier: TierMedium},
	{Name: "Portugal", Capital: "Lisbon", FlagCode: "pt", Continent: Europe, Region: "Southern Europe", Tier: TierEasy},
	{Name: "Romania", Capital: "Bucharest", FlagCode: "ro", Continent: Europe, Region: "Eastern Europe", Tier: TierMedium},
	{Name: "Russia", Capital: "Moscow", FlagCode: "ru", Continent: Europe, Region: "Eastern Europe", Tier: TierEasy},
	{Name: "San Marino", Capital: "San Marino", FlagCode: "sm", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Serbia", Capital: "Belgrade", FlagCode: "rs", Continent: Europe, Region: "Southern Europe", Tier: TierMedium},
	{Name: "Slovakia", Capital: "Bratislava", FlagCode: "sk", Continent: Europe, Region: "Central Europe", Tier: TierHard},
	{Name: "Slovenia", Capital: "Ljubljana", FlagCode: "si", Continent: Europe, Region: "Southern Europe", Tier: TierHard},
	{Name: "Spain", Capital: "Madrid", FlagCode: "es", Continent: Europe, Region: "Southern Europe", Tier: TierEasy},
	{Name: "Sweden", Capital: "Stockholm", FlagCode: "se", Continent: Europe, Region: "Northern Europe", Tier: TierEasy},
	{Name: "Switzerland", Capital: "Bern", FlagCode: "ch", Continent: Europe, Region: "Central Europe", Tier: TierEasy},
	{Name: "Ukraine", Capital: "Kyiv", FlagCode: "ua", Continent: Europe, Region: "Eastern Europe", Tier: TierMedium},
	{Name: "United Kingdom", Capital: "London", FlagCode: "gb", Continent: Europe, Region: "Western Europe", Tier: TierEasy},
	{Name: "Vatican City", Capital: "Vatican City", FlagCode: "va", Continent: Europe, Region: "Southern Europe", Tier: TierHard},

	// North America
	{Name: "Antigua and Barbuda", Capital: "St. John's", FlagCode: "ag", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Bahamas", Capital: "Nassau", FlagCode: "bs", Continent: NorthAmerica, Region: "Caribbean", Tier: TierMedium},
	{Name: "Barbados", Capital: "Bridgetown", FlagCode: "bb", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Belize", Capital: "Belmopan", FlagCode: "bz", Continent: NorthAmerica, Region: "Central America", Tier: TierHard},
	{Name: "Canada", Capital: "Ottawa", FlagCode: "ca", Continent: NorthAmerica, Region: "Northern America", Tier: TierEasy},
	{Name: "Costa Rica", Capital: "San José", FlagCode: "cr", Continent: NorthAmerica, Region: "Central America", Tier: TierMedium},
	{Name: "Cuba", Capital: "Havana", FlagCode: "cu", Continent: NorthAmerica, Region: "Caribbean", Tier: TierMedium},
	{Name: "Dominica", Capital: "Roseau", FlagCode: "dm", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Dominican Republic", Capital: "Santo Domingo", FlagCode: "do", Continent: NorthAmerica, Region: "Caribbean", Tier: TierMedium},
	{Name: "El Salvador", Capital: "San Salvador", FlagCode: "sv", Continent: NorthAmerica, Region: "Central America", Tier: TierHard},
	{Name: "Grenada", Capital: "St. George's", FlagCode: "gd", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Guatemala", Capital: "Guatemala City", FlagCode: "gt", Continent: NorthAmerica, Region: "Central America", Tier: TierMedium},
	{Name: "Haiti", Capital: "Port-au-Prince", FlagCode: "ht", Continent: NorthAmerica, Region: "Caribbean", Tier: TierMedium},
	{Name: "Honduras", Capital: "Tegucigalpa", FlagCode: "hn", Continent: NorthAmerica, Region: "Central America", Tier: TierHard},
	{Name: "Jamaica", Capital: "Kingston", FlagCode: "jm", Continent: NorthAmerica, Region: "Caribbean", Tier: TierMedium},
	{Name: "Mexico", Capital: "Mexico City", FlagCode: "mx", Continent: NorthAmerica, Region: "Central America", Tier: TierEasy},
	{Name: "Nicaragua", Capital: "Managua", FlagCode: "ni", Continent: NorthAmerica, Region: "Central America", Tier: TierHard},
	{Name: "Panama", Capital: "Panama City", FlagCode: "pa", Continent: NorthAmerica, Region: "Central America", Tier: TierMedium},
	{Name: "Saint Kitts and Nevis", Capital: "Basseterre", FlagCode: "kn", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Saint Lucia", Capital: "Castries", FlagCode: "lc", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Saint Vincent and the Grenadines", Capital: "Kingstown", FlagCode: "vc", Continent: NorthAmerica, Region: "Caribbean", Tier: TierHard},
	{Name: "Trinidad and Tobago", Capital: "Port of Spain", FlagCode: "tt", Continent: NorthAmerica, Region: "Caribbean", Tier: TierMedium},
	{Name: "United States", Capital: "Washington D.C.", FlagCode: "us", Continent: NorthAmerica, Region: "Northern America", Tier: TierEasy},

	// South America
	{Name: "Argentina", Capital: "Buenos Aires", FlagCode: "ar", Continent: SouthAmerica, Region: "South America", Tier: TierEasy},
	{Name: "Bolivia", Capital: "Sucre", FlagCode: "bo", Continent: SouthAmerica, Region: "South America", Tier: TierMedium},
	{Name: "Brazil", Capital: "Brasília", FlagCode: "br", Continent: SouthAmerica, Region: "South America", Tier: TierEasy},
	{Name: "Chile", Capital: "Santiago", FlagCode: "cl", Continent: SouthAmerica, Region: "South America", Tier: TierMedium},
	{Name: "Colombia", Capital: "Bogotá", FlagCode: "co", Continent: SouthAmerica, Region: "South America", Tier: TierMedium},
	{Name: "Ecuador", Capital: "Quito", FlagCode: "ec", Continent: SouthAmerica, Region: "South America", Tier: TierMedium},
	{Name: "Guyana", Capital: "Georgetown", FlagCode: "gy", Continent: SouthAmerica, Region: "South America", Tier: TierHard},
	{Name: "Paraguay", Capital: "Asunción", FlagCode: "py", Continent: SouthAmerica, Region: "South America", Tier: TierHard},
	{Name: "Peru", Capital: "Lima", FlagCode: "pe", Continent: SouthAmerica, Region: "South America", Tier: TierMedium},
	{Name: "Suriname", Capital: "Paramaribo", FlagCode: "sr", Continent: SouthAmerica, Region: "South America", Tier: TierHard},
	{Name: "Uruguay", Capital: "Montevideo", FlagCode: "uy", Continent: SouthAmerica, Region: "South America", Tier: TierHard},
	{Name: "Venezuela", Capital: "Caracas", FlagCode: "ve", Continent: SouthAmerica, Region: "South America", Tier: TierMedium},

	// Oceania
	{Name: "Australia", Capital: "Canberra", FlagCode: "au", Continent: Oceania, Region: "Oceania", Tier: TierEasy},
	{Name: "Fiji", Capital: "Suva", FlagCode: "fj", Continent: Oceania, Region: "Oceania", Tier: TierMedium},
	{Name: "Kiribati", Capital: "Tarawa", FlagCode: "ki", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Marshall Islands", Capital: "Majuro", FlagCode: "mh", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Micronesia", Capital: "Palikir", FlagCode: "fm", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Nauru", Capital: "Yaren", FlagCode: "nr", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "New Zealand", Capital: "Wellington", FlagCode: "nz", Continent: Oceania, Region: "Oceania", Tier: TierEasy},
	{Name: "Palau", Capital: "Ngerulmud", FlagCode: "pw", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Papua New Guinea", Capital: "Port Moresby", FlagCode: "pg", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Samoa", Capital: "Apia", FlagCode: "ws", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Solomon Islands", Capital: "Honiara", FlagCode: "sb", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Tonga", Capital: "Nuku'alofa", FlagCode: "to", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Tuvalu", Capital: "Funafuti", FlagCode: "tv", Continent: Oceania, Region: "Oceania", Tier: TierHard},
	{Name: "Vanuatu", Capital: "Port Vila", FlagCode: "vu", Continent: Oceania, Region: "Oceania", Tier: TierHard},
}
