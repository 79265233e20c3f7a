package bank

import (
	"strconv"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/checksum"
)

// profile is the static per-bank data behind the Bank accessors.
type profile struct {
	name     string
	label    string // set when the variant needs its own label
	category Category
	length   Length
	rule     Rule
}

var (
	type1Skip  = Type1Rule(true)
	type1Full  = Type1Rule(false)
	type2Mod10 = Type2Rule(Mod10)
	type2Mod11 = Type2Rule(Mod11)
)

// profiles follows Bankgirot's "Bankernas kontonummeruppbyggnad".
// Type 1 comment 1 is type1Skip, comment 2 is type1Full.
var profiles = map[Bank]profile{
	{ID: AlandsBanken}:     {name: "Ålandsbanken", length: Fixed(7), rule: type1Full},
	{ID: Avanza}:           {name: "Avanza Bank", length: Fixed(7), rule: type1Full},
	{ID: BlueStep}:         {name: "BlueStep Finans", length: Fixed(7), rule: type1Skip},
	{ID: BNPParibas}:       {name: "BNP Paribas", category: DataclearingOnly, length: Fixed(7), rule: type1Full},
	{ID: Citibank}:         {name: "Citibank", category: DataclearingOnly, length: Fixed(7), rule: type1Full},
	{ID: DanskeBank}:       {name: "Danske Bank", length: Fixed(7), rule: type1Skip},
	{ID: DNB}:              {name: "DNB Bank", length: Fixed(7), rule: type1Full},
	{ID: Ekobanken}:        {name: "Ekobanken", length: Fixed(7), rule: type1Full},
	{ID: ErikPenser}:       {name: "Erik Penser", category: DataclearingOnly, length: Fixed(7), rule: type1Full},
	{ID: ForexBank}:        {name: "Forex Bank", length: Fixed(7), rule: type1Skip},
	{ID: Handelsbanken}:    {name: "Handelsbanken", length: Fixed(9), rule: type2Mod11},
	{ID: ICABanken}:        {name: "ICA Banken", length: Fixed(7), rule: type1Skip},
	{ID: Ikano}:            {name: "IKANO Bank", length: Fixed(7), rule: type1Skip},
	{ID: JAKMedlemsbank}:   {name: "JAK Medlemsbank", length: Fixed(7), rule: type1Full},
	{ID: Klarna}:           {name: "Klarna Bank", length: Fixed(7), rule: type1Full},
	{ID: Landshypotek}:     {name: "Landshypotek", length: Fixed(7), rule: type1Full},
	{ID: LanOchSpar}:       {name: "Lån & Spar Bank", length: Fixed(7), rule: type1Skip},
	{ID: Lansforsakringar}: {name: "Länsförsäkringar Bank", length: Fixed(7), rule: type1Skip},
	{ID: Marginalen}:       {name: "Marginalen Bank", length: Fixed(7), rule: type1Skip},
	{ID: MedMera}:          {name: "MedMera Bank", length: Fixed(7), rule: type1Full},
	{ID: Nordax}:           {name: "Nordax Bank", length: Fixed(7), rule: type1Full},
	{ID: Nordea}:           {name: "Nordea", length: Fixed(7), rule: type1Skip},
	{ID: Nordnet}:          {name: "Nordnet Bank", length: Fixed(7), rule: type1Full},
	{ID: Northmill}:        {name: "Northmill Bank", length: Fixed(7), rule: type1Full},
	{ID: Resurs}:           {name: "Resurs Bank", length: Fixed(7), rule: type1Skip},
	{ID: Riksgalden}:       {name: "Riksgälden", category: DataclearingOnly, length: Fixed(7), rule: type1Full},
	{ID: Santander}:        {name: "Santander Consumer Bank", length: Fixed(7), rule: type1Skip},
	{ID: SBAB}:             {name: "SBAB", length: Fixed(7), rule: type1Skip},
	{ID: SEB}:              {name: "SEB", length: Fixed(7), rule: type1Skip},
	{ID: Skandiabanken}:    {name: "Skandiabanken", length: Fixed(7), rule: type1Full},
	{ID: SparbankenSyd}:    {name: "Sparbanken Syd", length: Fixed(10), rule: type2Mod10},
	{ID: Svea}:             {name: "Svea Bank", length: Fixed(7), rule: type1Full},
	{ID: Swedbank}:         {name: "Swedbank", length: Fixed(7), rule: type1Skip},

	{ID: DanskeBank, Variant: VariantLegacy}: {
		name: "Danske Bank", label: "Danske Bank (type 2)",
		length: Fixed(10), rule: type2Mod10,
	},
	{ID: Lansforsakringar, Variant: VariantFull}: {
		name: "Länsförsäkringar Bank", label: "Länsförsäkringar Bank (9020)",
		length: Fixed(7), rule: type1Full,
	},
	{ID: Nordea, Variant: VariantFull}: {
		name: "Nordea", label: "Nordea (4xxx)",
		length: Fixed(7), rule: type1Full,
	},
	{ID: Nordea, Variant: VariantPersonkonto}: {
		name: "Nordea", label: "Nordea (Personkonto)",
		length: Fixed(10), rule: type2Mod10,
	},
	{ID: Nordea, Variant: VariantPlusgirot}: {
		name: "Nordea", label: "Nordea (Plusgirot)",
		length: Between(2, 10), rule: type2Mod10,
	},
	{ID: Riksgalden, Variant: VariantLegacy}: {
		name: "Riksgälden", label: "Riksgälden (type 2)", category: DataclearingOnly,
		length: Fixed(10), rule: type2Mod10,
	},
	{ID: Swedbank, Variant: VariantFourDigit}: {
		name: "Swedbank", label: "Swedbank (8xxx)",
		length: Between(6, 10), rule: type2Mod10,
	},
	{ID: Swedbank, Variant: VariantCheckDigit}: {
		name: "Swedbank", label: "Swedbank (8xxx-x)",
		length: Between(6, 10), rule: type2Mod10,
	},
	{ID: Swedbank, Variant: VariantSparbankenOresund}: {
		name: "Swedbank", label: "Swedbank (fd Sparbanken Öresund)", category: Historical,
		length: Fixed(10), rule: type2Mod10,
	},
}

// Span is an inclusive range of clearing numbers.
type Span struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (s Span) contains(n int) bool {
	return n >= s.Min && n <= s.Max
}

func (s Span) String() string {
	if s.Min == s.Max {
		return strconv.Itoa(s.Min)
	}
	return strconv.Itoa(s.Min) + "-" + strconv.Itoa(s.Max)
}

// clearingRange maps a set of spans to a bank. check, when set, must also
// accept the clearing number.
type clearingRange struct {
	bank  Bank
	spans []Span
	check func(clearing int) bool
}

func (r clearingRange) matches(n int) bool {
	for _, s := range r.spans {
		if s.contains(n) {
			return r.check == nil || r.check(n)
		}
	}
	return false
}

// clearingRanges is scanned in order by Resolve. Entries are ordered by their
// lowest clearing number; the ranges are disjoint so order does not change
// the outcome.
var clearingRanges = []clearingRange{
	{bank: Bank{ID: Nordea}, spans: []Span{
		{1100, 1199}, {1400, 2099}, {3000, 3299}, {3301, 3399}, {3410, 3781}, {3783, 3999},
	}},
	{bank: Bank{ID: DanskeBank}, spans: []Span{{1200, 1399}, {2400, 2499}}},
	{bank: Bank{ID: AlandsBanken}, spans: []Span{{2300, 2399}}},
	{bank: Bank{ID: Nordea, Variant: VariantPersonkonto}, spans: []Span{{3300, 3300}, {3782, 3782}}},
	{bank: Bank{ID: Lansforsakringar}, spans: []Span{{3400, 3409}, {9060, 9069}}},
	{bank: Bank{ID: Nordea, Variant: VariantFull}, spans: []Span{{4000, 4999}}},
	{bank: Bank{ID: SEB}, spans: []Span{{5000, 5999}, {9120, 9124}, {9130, 9149}}},
	{bank: Bank{ID: Handelsbanken}, spans: []Span{{6000, 6999}}},
	{bank: Bank{ID: Swedbank}, spans: []Span{{7000, 7999}}},
	{bank: Bank{ID: Swedbank, Variant: VariantFourDigit}, spans: []Span{{8000, 8999}}},
	{bank: Bank{ID: Lansforsakringar, Variant: VariantFull}, spans: []Span{{9020, 9029}}},
	{bank: Bank{ID: Citibank}, spans: []Span{{9040, 9049}}},
	{bank: Bank{ID: Nordnet}, spans: []Span{{9100, 9109}}},
	{bank: Bank{ID: Skandiabanken}, spans: []Span{{9150, 9169}}},
	{bank: Bank{ID: Ikano}, spans: []Span{{9170, 9179}}},
	{bank: Bank{ID: DanskeBank, Variant: VariantLegacy}, spans: []Span{{9180, 9189}}},
	{bank: Bank{ID: DNB}, spans: []Span{{9190, 9199}, {9260, 9269}}},
	{bank: Bank{ID: Marginalen}, spans: []Span{{9230, 9239}}},
	{bank: Bank{ID: SBAB}, spans: []Span{{9250, 9259}}},
	{bank: Bank{ID: ICABanken}, spans: []Span{{9270, 9279}}},
	{bank: Bank{ID: Resurs}, spans: []Span{{9280, 9289}}},
	{bank: Bank{ID: Swedbank, Variant: VariantSparbankenOresund}, spans: []Span{{9300, 9349}}},
	{bank: Bank{ID: Landshypotek}, spans: []Span{{9390, 9399}}},
	{bank: Bank{ID: ForexBank}, spans: []Span{{9400, 9449}}},
	{bank: Bank{ID: Santander}, spans: []Span{{9460, 9469}}},
	{bank: Bank{ID: BNPParibas}, spans: []Span{{9470, 9479}}},
	{bank: Bank{ID: Nordea, Variant: VariantPlusgirot}, spans: []Span{{9500, 9549}, {9960, 9969}}},
	{bank: Bank{ID: Avanza}, spans: []Span{{9550, 9569}}},
	{bank: Bank{ID: SparbankenSyd}, spans: []Span{{9570, 9579}}},
	{bank: Bank{ID: ErikPenser}, spans: []Span{{9590, 9599}}},
	{bank: Bank{ID: LanOchSpar}, spans: []Span{{9630, 9639}}},
	{bank: Bank{ID: Nordax}, spans: []Span{{9640, 9649}}},
	{bank: Bank{ID: MedMera}, spans: []Span{{9650, 9659}}},
	{bank: Bank{ID: Svea}, spans: []Span{{9660, 9669}}},
	{bank: Bank{ID: JAKMedlemsbank}, spans: []Span{{9670, 9679}}},
	{bank: Bank{ID: BlueStep}, spans: []Span{{9680, 9689}}},
	{bank: Bank{ID: Ekobanken}, spans: []Span{{9700, 9709}}},
	{bank: Bank{ID: Northmill}, spans: []Span{{9750, 9759}}},
	{bank: Bank{ID: Klarna}, spans: []Span{{9780, 9789}}},
	{bank: Bank{ID: Riksgalden}, spans: []Span{{9880, 9889}}},
	{bank: Bank{ID: Riksgalden, Variant: VariantLegacy}, spans: []Span{{9890, 9899}}},
	{
		bank:  Bank{ID: Swedbank, Variant: VariantCheckDigit},
		spans: []Span{{80000, 89999}},
		check: func(clearing int) bool { return checksum.Mod10(strconv.Itoa(clearing)) },
	},
}
