package geo

// Статический справочник стран и регионов для форм регистрации.
// Источник данных встроен в бинарь: справочник меняется редко,
// внешнего сервиса для него не нужно. Покрывает рынки, по которым
// каталог держит цены (см. PriceRecords), плюс основные страны
// доставки; новые страны добавляются строкой в countryData.

// Region — регион страны в формате ответа API.
type Region struct {
	ID        int    `json:"id"`
	NameAscii string `json:"nameAscii"`
}

// Country — страна с регионами в формате ответа API.
type Country struct {
	ID        int      `json:"id"`
	NameAscii string   `json:"nameAscii"`
	Codes2    string   `json:"codes2"`
	Flag      string   `json:"flag"`
	ISDCode   string   `json:"isdCode"`
	RegionSet []Region `json:"regionSet"`
}

const (
	baseCountryID    = 100
	regionMultiplier = 10
)

type countryRecord struct {
	name    string
	iso2    string
	flag    string
	dialing string
	regions []string
}

var countryData = []countryRecord{
	{"India", "IN", "🇮🇳", "91", []string{"Andhra Pradesh", "Delhi", "Gujarat", "Karnataka", "Kerala", "Maharashtra", "Punjab", "Rajasthan", "Tamil Nadu", "Telangana", "Uttar Pradesh", "West Bengal"}},
	{"United States", "US", "🇺🇸", "1", []string{"California", "Florida", "Illinois", "Massachusetts", "New Jersey", "New York", "Texas", "Washington"}},
	{"United Kingdom", "GB", "🇬🇧", "44", []string{"England", "Northern Ireland", "Scotland", "Wales"}},
	{"Singapore", "SG", "🇸🇬", "65", []string{"Central Singapore", "North East", "North West", "South East", "South West"}},
	{"United Arab Emirates", "AE", "🇦🇪", "971", []string{"Abu Dhabi", "Ajman", "Dubai", "Fujairah", "Ras Al Khaimah", "Sharjah", "Umm Al Quwain"}},
	{"Canada", "CA", "🇨🇦", "1", []string{"Alberta", "British Columbia", "Manitoba", "Ontario", "Quebec", "Saskatchewan"}},
	{"Australia", "AU", "🇦🇺", "61", []string{"New South Wales", "Queensland", "South Australia", "Tasmania", "Victoria", "Western Australia"}},
	{"Germany", "DE", "🇩🇪", "49", []string{"Baden-Wurttemberg", "Bavaria", "Berlin", "Hamburg", "Hesse", "North Rhine-Westphalia", "Saxony"}},
	{"France", "FR", "🇫🇷", "33", []string{"Auvergne-Rhone-Alpes", "Brittany", "Ile-de-France", "Normandy", "Occitanie", "Provence-Alpes-Cote d'Azur"}},
	{"Russia", "RU", "🇷🇺", "7", []string{"Moscow", "Moscow Oblast", "Novosibirsk Oblast", "Saint Petersburg", "Sverdlovsk Oblast", "Tatarstan"}},
}

// Countries возвращает справочник в формате, ожидаемом клиентом админки:
// id стран начинаются со 100, id региона = id страны * 10 + индекс.
func Countries() []Country {
	countries := make([]Country, 0, len(countryData))
	for i, rec := range countryData {
		countryID := baseCountryID + i

		regions := make([]Region, 0, len(rec.regions))
		for j, name := range rec.regions {
			regions = append(regions, Region{
				ID:        countryID*regionMultiplier + j,
				NameAscii: name,
			})
		}

		countries = append(countries, Country{
			ID:        countryID,
			NameAscii: rec.name,
			Codes2:    rec.iso2,
			Flag:      rec.flag,
			ISDCode:   "+" + rec.dialing,
			RegionSet: regions,
		})
	}
	return countries
}
