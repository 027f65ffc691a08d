package money

// iso4217 is the built-in currency table loaded into the [Default] registry.
// Codes, numeric codes, names, and scales follow the ISO 4217 standard.
var iso4217 = []struct {
	code  string
	num   string
	name  string
	scale int
}{
	{"AED", "784", "UAE Dirham", 2},
	{"ARS", "032", "Argentine Peso", 2},
	{"AUD", "036", "Australian Dollar", 2},
	{"BDT", "050", "Taka", 2},
	{"BGN", "975", "Bulgarian Lev", 2},
	{"BHD", "048", "Bahraini Dinar", 3},
	{"BOB", "068", "Boliviano", 2},
	{"BRL", "986", "Brazilian Real", 2},
	{"BSD", "044", "Bahamian Dollar", 2},
	{"BWP", "072", "Pula", 2},
	{"CAD", "124", "Canadian Dollar", 2},
	{"CHF", "756", "Swiss Franc", 2},
	{"CLF", "990", "Unidad de Fomento", 4},
	{"CLP", "152", "Chilean Peso", 0},
	{"CNY", "156", "Yuan Renminbi", 2},
	{"COP", "170", "Colombian Peso", 2},
	{"CRC", "188", "Costa Rican Colon", 2},
	{"CZK", "203", "Czech Koruna", 2},
	{"DKK", "208", "Danish Krone", 2},
	{"DOP", "214", "Dominican Peso", 2},
	{"DZD", "012", "Algerian Dinar", 2},
	{"EGP", "818", "Egyptian Pound", 2},
	{"ETB", "230", "Ethiopian Birr", 2},
	{"EUR", "978", "Euro", 2},
	{"GBP", "826", "Pound Sterling", 2},
	{"GHS", "936", "Ghana Cedi", 2},
	{"GTQ", "320", "Quetzal", 2},
	{"HKD", "344", "Hong Kong Dollar", 2},
	{"HNL", "340", "Lempira", 2},
	{"HUF", "348", "Forint", 2},
	{"IDR", "360", "Rupiah", 2},
	{"ILS", "376", "New Israeli Sheqel", 2},
	{"INR", "356", "Indian Rupee", 2},
	{"IQD", "368", "Iraqi Dinar", 3},
	{"ISK", "352", "Iceland Krona", 0},
	{"JMD", "388", "Jamaican Dollar", 2},
	{"JOD", "400", "Jordanian Dinar", 3},
	{"JPY", "392", "Yen", 0},
	{"KES", "404", "Kenyan Shilling", 2},
	{"KRW", "410", "Won", 0},
	{"KWD", "414", "Kuwaiti Dinar", 3},
	{"KZT", "398", "Tenge", 2},
	{"LKR", "144", "Sri Lanka Rupee", 2},
	{"LYD", "434", "Libyan Dinar", 3},
	{"MAD", "504", "Moroccan Dirham", 2},
	{"MUR", "480", "Mauritius Rupee", 2},
	{"MXN", "484", "Mexican Peso", 2},
	{"MYR", "458", "Malaysian Ringgit", 2},
	{"NGN", "566", "Naira", 2},
	{"NOK", "578", "Norwegian Krone", 2},
	{"NPR", "524", "Nepalese Rupee", 2},
	{"NZD", "554", "New Zealand Dollar", 2},
	{"OMR", "512", "Rial Omani", 3},
	{"PEN", "604", "Sol", 2},
	{"PHP", "608", "Philippine Peso", 2},
	{"PKR", "586", "Pakistan Rupee", 2},
	{"PLN", "985", "Zloty", 2},
	{"PYG", "600", "Guarani", 0},
	{"QAR", "634", "Qatari Rial", 2},
	{"RON", "946", "Romanian Leu", 2},
	{"RUB", "643", "Russian Ruble", 2},
	{"SAR", "682", "Saudi Riyal", 2},
	{"SEK", "752", "Swedish Krona", 2},
	{"SGD", "702", "Singapore Dollar", 2},
	{"THB", "764", "Baht", 2},
	{"TND", "788", "Tunisian Dinar", 3},
	{"TRY", "949", "Turkish Lira", 2},
	{"TTD", "780", "Trinidad and Tobago Dollar", 2},
	{"TWD", "901", "New Taiwan Dollar", 2},
	{"TZS", "834", "Tanzanian Shilling", 2},
	{"UAH", "980", "Hryvnia", 2},
	{"UGX", "800", "Uganda Shilling", 0},
	{"USD", "840", "US Dollar", 2},
	{"UYU", "858", "Peso Uruguayo", 2},
	{"VND", "704", "Dong", 0},
	{"XAF", "950", "CFA Franc BEAC", 0},
	{"XOF", "952", "CFA Franc BCEAO", 0},
	{"ZAR", "710", "Rand", 2},
	{"ZMW", "967", "Zambian Kwacha", 2},
}

// iso3166Currency maps ISO 3166 alpha-2 country codes to the alphabetic code
// of the country's official currency.
var iso3166Currency = map[string]string{
	"AE": "AED",
	"AR": "ARS",
	"AT": "EUR",
	"AU": "AUD",
	"BD": "BDT",
	"BE": "EUR",
	"BG": "BGN",
	"BH": "BHD",
	"BO": "BOB",
	"BR": "BRL",
	"BS": "BSD",
	"BW": "BWP",
	"CA": "CAD",
	"CH": "CHF",
	"CI": "XOF",
	"CL": "CLP",
	"CM": "XAF",
	"CN": "CNY",
	"CO": "COP",
	"CR": "CRC",
	"CY": "EUR",
	"CZ": "CZK",
	"DE": "EUR",
	"DK": "DKK",
	"DO": "DOP",
	"DZ": "DZD",
	"EE": "EUR",
	"EG": "EGP",
	"ES": "EUR",
	"ET": "ETB",
	"FI": "EUR",
	"FR": "EUR",
	"GB": "GBP",
	"GH": "GHS",
	"GR": "EUR",
	"GT": "GTQ",
	"HK": "HKD",
	"HN": "HNL",
	"HU": "HUF",
	"ID": "IDR",
	"IE": "EUR",
	"IL": "ILS",
	"IN": "INR",
	"IQ": "IQD",
	"IS": "ISK",
	"IT": "EUR",
	"JM": "JMD",
	"JO": "JOD",
	"JP": "JPY",
	"KE": "KES",
	"KR": "KRW",
	"KW": "KWD",
	"KZ": "KZT",
	"LI": "CHF",
	"LK": "LKR",
	"LT": "EUR",
	"LU": "EUR",
	"LV": "EUR",
	"LY": "LYD",
	"MA": "MAD",
	"MT": "EUR",
	"MU": "MUR",
	"MX": "MXN",
	"MY": "MYR",
	"NG": "NGN",
	"NL": "EUR",
	"NO": "NOK",
	"NP": "NPR",
	"NZ": "NZD",
	"OM": "OMR",
	"PE": "PEN",
	"PH": "PHP",
	"PK": "PKR",
	"PL": "PLN",
	"PT": "EUR",
	"PY": "PYG",
	"QA": "QAR",
	"RO": "RON",
	"RU": "RUB",
	"SA": "SAR",
	"SE": "SEK",
	"SG": "SGD",
	"SI": "EUR",
	"SK": "EUR",
	"SN": "XOF",
	"TH": "THB",
	"TN": "TND",
	"TR": "TRY",
	"TT": "TTD",
	"TW": "TWD",
	"TZ": "TZS",
	"UA": "UAH",
	"UG": "UGX",
	"US": "USD",
	"UY": "UYU",
	"VN": "VND",
	"ZA": "ZAR",
	"ZM": "ZMW",
}
