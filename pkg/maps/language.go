package maps

// Language selects the language of response texts where available.
type Language string

const (
	LanguageAfrikaans           Language = "af"
	LanguageAlbanian            Language = "sq"
	LanguageAmharic             Language = "am"
	LanguageArabic              Language = "ar"
	LanguageArmenian            Language = "hy"
	LanguageAzerbaijani         Language = "az"
	LanguageBasque              Language = "eu"
	LanguageBelarusian          Language = "be"
	LanguageBengali             Language = "bn"
	LanguageBosnian             Language = "bs"
	LanguageBulgarian           Language = "bg"
	LanguageBurmese             Language = "my"
	LanguageCatalan             Language = "ca"
	LanguageChinese             Language = "zh"
	LanguageChineseSimplified   Language = "zh-CN"
	LanguageChineseHongKong     Language = "zh-HK"
	LanguageChineseTraditional  Language = "zh-TW"
	LanguageCroatian            Language = "hr"
	LanguageCzech               Language = "cs"
	LanguageDanish              Language = "da"
	LanguageDutch               Language = "nl"
	LanguageEnglish             Language = "en"
	LanguageEnglishAustralian   Language = "en-AU"
	LanguageEnglishGreatBritain Language = "en-GB"
	LanguageEstonian            Language = "et"
	LanguageFarsi               Language = "fa"
	LanguageFinnish             Language = "fi"
	LanguageFilipino            Language = "fil"
	LanguageFrench              Language = "fr"
	LanguageFrenchCanada        Language = "fr-CA"
	LanguageGalician            Language = "gl"
	LanguageGeorgian            Language = "ka"
	LanguageGerman              Language = "de"
	LanguageGreek               Language = "el"
	LanguageGujarati            Language = "gu"
	LanguageHebrew              Language = "iw"
	LanguageHindi               Language = "hi"
	LanguageHungarian           Language = "hu"
	LanguageIcelandic           Language = "is"
	LanguageIndonesian          Language = "id"
	LanguageItalian             Language = "it"
	LanguageJapanese            Language = "ja"
	LanguageKannada             Language = "kn"
	LanguageKazakh              Language = "kk"
	LanguageKhmer               Language = "km"
	LanguageKorean              Language = "ko"
	LanguageKyrgyz              Language = "ky"
	LanguageLao                 Language = "lo"
	LanguageLatvian             Language = "lv"
	LanguageLithuanian          Language = "lt"
	LanguageMacedonian          Language = "mk"
	LanguageMalay               Language = "ms"
	LanguageMalayalam           Language = "ml"
	LanguageMarathi             Language = "mr"
	LanguageMongolian           Language = "mn"
	LanguageNepali              Language = "ne"
	LanguageNorwegian           Language = "no"
	LanguagePolish              Language = "pl"
	LanguagePortuguese          Language = "pt"
	LanguagePortugueseBrazil    Language = "pt-BR"
	LanguagePortuguesePortugal  Language = "pt-PT"
	LanguagePunjabi             Language = "pa"
	LanguageRomanian            Language = "ro"
	LanguageRussian             Language = "ru"
	LanguageSerbian             Language = "sr"
	LanguageSinhalese           Language = "si"
	LanguageSlovak              Language = "sk"
	LanguageSlovenian           Language = "sl"
	LanguageSpanish             Language = "es"
	LanguageSpanishLatinAmerica Language = "es-419"
	LanguageSwahili             Language = "sw"
	LanguageSwedish             Language = "sv"
	LanguageTamil               Language = "ta"
	LanguageTelugu              Language = "te"
	LanguageThai                Language = "th"
	LanguageTurkish             Language = "tr"
	LanguageUkrainian           Language = "uk"
	LanguageUrdu                Language = "ur"
	LanguageUzbek               Language = "uz"
	LanguageVietnamese          Language = "vi"
	LanguageZulu                Language = "zu"
)

var languages = NewCodeTable("Language",
	LanguageAfrikaans, LanguageAlbanian, LanguageAmharic, LanguageArabic, LanguageArmenian,
	LanguageAzerbaijani, LanguageBasque, LanguageBelarusian, LanguageBengali,
	LanguageBosnian, LanguageBulgarian, LanguageBurmese, LanguageCatalan, LanguageChinese,
	LanguageChineseSimplified, LanguageChineseHongKong, LanguageChineseTraditional,
	LanguageCroatian, LanguageCzech, LanguageDanish, LanguageDutch, LanguageEnglish,
	LanguageEnglishAustralian, LanguageEnglishGreatBritain, LanguageEstonian, LanguageFarsi,
	LanguageFinnish, LanguageFilipino, LanguageFrench, LanguageFrenchCanada,
	LanguageGalician, LanguageGeorgian, LanguageGerman, LanguageGreek, LanguageGujarati,
	LanguageHebrew, LanguageHindi, LanguageHungarian, LanguageIcelandic, LanguageIndonesian,
	LanguageItalian, LanguageJapanese, LanguageKannada, LanguageKazakh, LanguageKhmer,
	LanguageKorean, LanguageKyrgyz, LanguageLao, LanguageLatvian, LanguageLithuanian,
	LanguageMacedonian, LanguageMalay, LanguageMalayalam, LanguageMarathi,
	LanguageMongolian, LanguageNepali, LanguageNorwegian, LanguagePolish,
	LanguagePortuguese, LanguagePortugueseBrazil, LanguagePortuguesePortugal,
	LanguagePunjabi, LanguageRomanian, LanguageRussian, LanguageSerbian, LanguageSinhalese,
	LanguageSlovak, LanguageSlovenian, LanguageSpanish, LanguageSpanishLatinAmerica,
	LanguageSwahili, LanguageSwedish, LanguageTamil, LanguageTelugu, LanguageThai,
	LanguageTurkish, LanguageUkrainian, LanguageUrdu, LanguageUzbek, LanguageVietnamese,
	LanguageZulu)

// ParseLanguage looks up a language by its code, including regional variants such as "en-GB".
func ParseLanguage(code string) (Language, error) { return languages.Parse(code) }

// Languages lists every supported language.
func Languages() []Language { return languages.All() }

func (l Language) String() string { return string(l) }

func (l Language) MarshalText() ([]byte, error) { return languages.Marshal(l) }

func (l *Language) UnmarshalText(text []byte) error { return languages.Unmarshal(text, l) }
