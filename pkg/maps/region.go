package maps

import "strings"

// Region biases geocoding towards a country, given as a ccTLD code.
type Region string

// Frequently used regions. Any code accepted by ParseRegion is valid.
const (
	RegionAustralia     Region = "au"
	RegionBrazil        Region = "br"
	RegionCanada        Region = "ca"
	RegionChina         Region = "cn"
	RegionFinland       Region = "fi"
	RegionFrance        Region = "fr"
	RegionGermany       Region = "de"
	RegionIndia         Region = "in"
	RegionItaly         Region = "it"
	RegionJapan         Region = "jp"
	RegionMexico        Region = "mx"
	RegionNetherlands   Region = "nl"
	RegionSpain         Region = "es"
	RegionSweden        Region = "se"
	RegionSwitzerland   Region = "ch"
	RegionUnitedKingdom Region = "uk"
	RegionUnitedStates  Region = "us"
)

var regions = func() CodeTable[Region] {
	codes := strings.Fields(`
		ac ad ae af ag ai al am ao aq ar as at au aw ax az ba bb bd
		be bf bg bh bi bj bm bn bo bq br bs bt bw by bz ca cc cd cf
		cg ch ci ck cl cm cn co cr cu cv cw cx cy cz de dj dk dm do
		dz ec ee eg er es et eu fi fj fk fm fo fr ga gd ge gf gg gh
		gi gl gm gn gp gq gr gs gt gu gw gy hk hm hn hr ht hu id ie
		il im in io iq ir is it je jm jo jp ke kg kh ki km kn kp kr
		kw ky kz la lb lc li lk lr ls lt lu lv ly ma mc md me mg mh
		mk ml mm mn mo mp mq mr ms mt mu mv mw mx my mz na nc ne nf
		ng ni nl no np nr nu nz om pa pe pf pg ph pk pl pm pn pr ps
		pt pw py qa re ro rs ru rw sa sb sc sd se sg sh si sk sl sm
		sn so sr ss st su sv sx sy sz tc td tf tg th tj tk tl tm tn
		to tr tt tv tw tz ua ug uk us uy uz va vc ve vg vi vn vu wf
		ws ye yt za zm zw
	`)
	values := make([]Region, len(codes))
	for i, code := range codes {
		values[i] = Region(code)
	}
	return NewCodeTable("Region", values...)
}()

// ParseRegion looks up a region by its ccTLD code.
func ParseRegion(code string) (Region, error) { return regions.Parse(code) }

// Regions lists every region.
func Regions() []Region { return regions.All() }

func (r Region) String() string { return string(r) }

func (r Region) MarshalText() ([]byte, error) { return regions.Marshal(r) }

func (r *Region) UnmarshalText(text []byte) error { return regions.Unmarshal(text, r) }
