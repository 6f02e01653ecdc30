package locations

// countries is the static directory. Method is the Al Adhan calculation
// method used for the whole country.
var countries = []Country{
	{Name: "Algeria", ArabicName: "الجزائر", Code: "DZ", Timezone: "Africa/Algiers", Method: 5, Cities: []City{
		{Name: "Algiers", ArabicName: "الجزائر"},
		{Name: "Oran", ArabicName: "وهران"},
		{Name: "Constantine", ArabicName: "قسنطينة"},
		{Name: "Annaba", ArabicName: "عنابة"},
	}},
	{Name: "Bahrain", ArabicName: "البحرين", Code: "BH", Timezone: "Asia/Bahrain", Method: 8, Cities: []City{
		{Name: "Manama", ArabicName: "المنامة"},
		{Name: "Riffa", ArabicName: "الرفاع"},
		{Name: "Muharraq", ArabicName: "المحرق"},
	}},
	{Name: "Comoros", ArabicName: "جزر القمر", Code: "KM", Timezone: "Indian/Comoro", Method: 3, Cities: []City{
		{Name: "Moroni", ArabicName: "موروني"},
		{Name: "Mutsamudu", ArabicName: "موتسامودو"},
	}},
	{Name: "Djibouti", ArabicName: "جيبوتي", Code: "DJ", Timezone: "Africa/Djibouti", Method: 3, Cities: []City{
		{Name: "Djibouti", ArabicName: "جيبوتي"},
		{Name: "Ali Sabieh", ArabicName: "علي صبيح"},
		{Name: "Tadjoura", ArabicName: "تاجورة"},
	}},
	{Name: "Egypt", ArabicName: "مصر", Code: "EG", Timezone: "Africa/Cairo", Method: 5, Cities: []City{
		{Name: "Cairo", ArabicName: "القاهرة"},
		{Name: "Alexandria", ArabicName: "الإسكندرية"},
		{Name: "Giza", ArabicName: "الجيزة"},
		{Name: "Luxor", ArabicName: "الأقصر"},
		{Name: "Aswan", ArabicName: "أسوان"},
	}},
	{Name: "Iraq", ArabicName: "العراق", Code: "IQ", Timezone: "Asia/Baghdad", Method: 3, Cities: []City{
		{Name: "Baghdad", ArabicName: "بغداد"},
		{Name: "Basra", ArabicName: "البصرة"},
		{Name: "Mosul", ArabicName: "الموصل"},
		{Name: "Erbil", ArabicName: "أربيل"},
		{Name: "Karbala", ArabicName: "كربلاء"},
	}},
	{Name: "Jordan", ArabicName: "الأردن", Code: "JO", Timezone: "Asia/Amman", Method: 3, Cities: []City{
		{Name: "Amman", ArabicName: "عمان"},
		{Name: "Zarqa", ArabicName: "الزرقاء"},
		{Name: "Irbid", ArabicName: "إربد"},
		{Name: "Aqaba", ArabicName: "العقبة"},
	}},
	{Name: "Kuwait", ArabicName: "الكويت", Code: "KW", Timezone: "Asia/Kuwait", Method: 9, Cities: []City{
		{Name: "Kuwait City", ArabicName: "مدينة الكويت"},
		{Name: "Hawalli", ArabicName: "حولي"},
		{Name: "Salmiya", ArabicName: "السالمية"},
	}},
	{Name: "Lebanon", ArabicName: "لبنان", Code: "LB", Timezone: "Asia/Beirut", Method: 3, Cities: []City{
		{Name: "Beirut", ArabicName: "بيروت"},
		{Name: "Tripoli", ArabicName: "طرابلس"},
		{Name: "Sidon", ArabicName: "صيدا"},
		{Name: "Tyre", ArabicName: "صور"},
	}},
	{Name: "Libya", ArabicName: "ليبيا", Code: "LY", Timezone: "Africa/Tripoli", Method: 5, Cities: []City{
		{Name: "Tripoli", ArabicName: "طرابلس"},
		{Name: "Benghazi", ArabicName: "بنغازي"},
		{Name: "Misrata", ArabicName: "مصراتة"},
	}},
	{Name: "Mauritania", ArabicName: "موريتانيا", Code: "MR", Timezone: "Africa/Nouakchott", Method: 3, Cities: []City{
		{Name: "Nouakchott", ArabicName: "نواكشوط"},
		{Name: "Nouadhibou", ArabicName: "نواذيبو"},
	}},
	{Name: "Morocco", ArabicName: "المغرب", Code: "MA", Timezone: "Africa/Casablanca", Method: 5, Cities: []City{
		{Name: "Rabat", ArabicName: "الرباط"},
		{Name: "Casablanca", ArabicName: "الدار البيضاء"},
		{Name: "Fes", ArabicName: "فاس"},
		{Name: "Marrakesh", ArabicName: "مراكش"},
		{Name: "Tangier", ArabicName: "طنجة"},
	}},
	{Name: "Oman", ArabicName: "عمان", Code: "OM", Timezone: "Asia/Muscat", Method: 8, Cities: []City{
		{Name: "Muscat", ArabicName: "مسقط"},
		{Name: "Salalah", ArabicName: "صلالة"},
		{Name: "Sohar", ArabicName: "صحار"},
		{Name: "Nizwa", ArabicName: "نزوى"},
	}},
	{Name: "Palestine", ArabicName: "فلسطين", Code: "PS", Timezone: "Asia/Hebron", Method: 3, Cities: []City{
		{Name: "Jerusalem", ArabicName: "القدس"},
		{Name: "Gaza", ArabicName: "غزة", Timezone: "Asia/Gaza"},
		{Name: "Ramallah", ArabicName: "رام الله"},
		{Name: "Hebron", ArabicName: "الخليل"},
		{Name: "Nablus", ArabicName: "نابلس"},
	}},
	{Name: "Qatar", ArabicName: "قطر", Code: "QA", Timezone: "Asia/Qatar", Method: 10, Cities: []City{
		{Name: "Doha", ArabicName: "الدوحة"},
		{Name: "Al Wakrah", ArabicName: "الوكرة"},
		{Name: "Al Khor", ArabicName: "الخور"},
	}},
	{Name: "Saudi Arabia", ArabicName: "المملكة العربية السعودية", Code: "SA", Timezone: "Asia/Riyadh", Method: 4, Cities: []City{
		{Name: "Riyadh", ArabicName: "الرياض"},
		{Name: "Jeddah", ArabicName: "جدة"},
		{Name: "Mecca", ArabicName: "مكة"},
		{Name: "Medina", ArabicName: "المدينة المنورة"},
		{Name: "Dammam", ArabicName: "الدمام"},
	}},
	{Name: "Somalia", ArabicName: "الصومال", Code: "SO", Timezone: "Africa/Mogadishu", Method: 3, Cities: []City{
		{Name: "Mogadishu", ArabicName: "مقديشو"},
		{Name: "Hargeisa", ArabicName: "هرجيسا"},
		{Name: "Kismayo", ArabicName: "كيسمايو"},
	}},
	{Name: "Sudan", ArabicName: "السودان", Code: "SD", Timezone: "Africa/Khartoum", Method: 5, Cities: []City{
		{Name: "Khartoum", ArabicName: "الخرطوم"},
		{Name: "Omdurman", ArabicName: "أم درمان"},
		{Name: "Port Sudan", ArabicName: "بورتسودان"},
	}},
	{Name: "Syria", ArabicName: "سوريا", Code: "SY", Timezone: "Asia/Damascus", Method: 3, Cities: []City{
		{Name: "Damascus", ArabicName: "دمشق"},
		{Name: "Aleppo", ArabicName: "حلب"},
		{Name: "Homs", ArabicName: "حمص"},
		{Name: "Latakia", ArabicName: "اللاذقية"},
	}},
	{Name: "Tunisia", ArabicName: "تونس", Code: "TN", Timezone: "Africa/Tunis", Method: 7, Cities: []City{
		{Name: "Tunis", ArabicName: "تونس"},
		{Name: "Sfax", ArabicName: "صفاقس"},
		{Name: "Sousse", ArabicName: "سوسة"},
		{Name: "Kairouan", ArabicName: "القيروان"},
	}},
	{Name: "United Arab Emirates", ArabicName: "الإمارات العربية المتحدة", Code: "AE", Timezone: "Asia/Dubai", Method: 8, Cities: []City{
		{Name: "Dubai", ArabicName: "دبي"},
		{Name: "Abu Dhabi", ArabicName: "أبو ظبي"},
		{Name: "Sharjah", ArabicName: "الشارقة"},
		{Name: "Al Ain", ArabicName: "العين"},
	}},
	{Name: "Yemen", ArabicName: "اليمن", Code: "YE", Timezone: "Asia/Aden", Method: 3, Cities: []City{
		{Name: "Sana'a", ArabicName: "صنعاء"},
		{Name: "Aden", ArabicName: "عدن"},
		{Name: "Taiz", ArabicName: "تعز"},
	}},
}
