package languages

// defaultEntries maps Slack flag country codes to the primary language Google
// Translate knows them by. Countries with several official languages and no
// clear default (ch, be, ca, lu, ...) are deliberately missing.
var defaultEntries = map[string]string{
	"ac": "en",
	"ad": "ca",
	"ae": "ar",
	"af": "ps",
	"ag": "en",
	"ai": "en",
	"al": "sq",
	"am": "hy",
	"ao": "pt",
	"ar": "es",
	"as": "en",
	"at": "de",
	"au": "en",
	"aw": "nl",
	"ax": "sv",
	"az": "az",
	"ba": "bs",
	"bb": "en",
	"bd": "bn",
	"bf": "fr",
	"bg": "bg",
	"bh": "ar",
	"bi": "fr",
	"bj": "fr",
	"bl": "fr",
	"bm": "en",
	"bn": "ms",
	"bo": "es",
	"bq": "nl",
	"br": "pt-BR",
	"bs": "en",
	"bt": "dz",
	"bw": "en",
	"by": "be",
	"bz": "en",
	"cd": "fr",
	"cf": "fr",
	"cg": "fr",
	"ci": "fr",
	"ck": "en",
	"cl": "es",
	"cm": "fr",
	"cn": "zh-CN",
	"co": "es",
	"cr": "es",
	"cu": "es",
	"cv": "pt",
	"cw": "nl",
	"cx": "en",
	"cy": "el",
	"cz": "cs",
	"de": "de",
	"dj": "fr",
	"dk": "da",
	"dm": "en",
	"do": "es",
	"dz": "ar",
	"ea": "es",
	"ec": "es",
	"ee": "et",
	"england": "en",
	"eg": "ar",
	"eh": "ar",
	"er": "ti",
	"es": "es",
	"et": "am",
	"fi": "fi",
	"fj": "en",
	"fk": "en",
	"fm": "en",
	"fo": "da",
	"fr": "fr",
	"ga": "fr",
	"gb": "en",
	"gd": "en",
	"ge": "ka",
	"gf": "fr",
	"gg": "en",
	"gh": "en",
	"gi": "en",
	"gl": "da",
	"gm": "en",
	"gn": "fr",
	"gp": "fr",
	"gq": "es",
	"gr": "el",
	"gt": "es",
	"gu": "en",
	"gw": "pt",
	"gy": "en",
	"hk": "zh-TW",
	"hn": "es",
	"hr": "hr",
	"ht": "ht",
	"hu": "hu",
	"ic": "es",
	"id": "id",
	"ie": "ga",
	"il": "he",
	"im": "en",
	"in": "hi",
	"io": "en",
	"iq": "ar",
	"ir": "fa",
	"is": "is",
	"it": "it",
	"je": "en",
	"jm": "en",
	"jo": "ar",
	"jp": "ja",
	"ke": "sw",
	"kg": "ky",
	"kh": "km",
	"ki": "en",
	"km": "ar",
	"kn": "en",
	"kp": "ko",
	"kr": "ko",
	"kw": "ar",
	"ky": "en",
	"kz": "kk",
	"la": "lo",
	"lb": "ar",
	"lc": "en",
	"li": "de",
	"lk": "si",
	"lr": "en",
	"ls": "en",
	"lt": "lt",
	"lv": "lv",
	"ly": "ar",
	"ma": "ar",
	"mc": "fr",
	"md": "ro",
	"me": "sr",
	"mf": "fr",
	"mg": "mg",
	"mh": "en",
	"mk": "mk",
	"ml": "fr",
	"mm": "my",
	"mn": "mn",
	"mo": "zh-TW",
	"mp": "en",
	"mq": "fr",
	"mr": "ar",
	"ms": "en",
	"mt": "mt",
	"mu": "en",
	"mv": "dv",
	"mw": "ny",
	"mx": "es",
	"my": "ms",
	"mz": "pt",
	"na": "en",
	"nc": "fr",
	"ne": "fr",
	"nf": "en",
	"ng": "en",
	"ni": "es",
	"nl": "nl",
	"no": "no",
	"np": "ne",
	"nr": "en",
	"nu": "en",
	"nz": "en",
	"om": "ar",
	"pa": "es",
	"pe": "es",
	"pf": "fr",
	"pg": "en",
	"ph": "tl",
	"pk": "ur",
	"pl": "pl",
	"pm": "fr",
	"pn": "en",
	"pr": "es",
	"ps": "ar",
	"pt": "pt",
	"pw": "en",
	"py": "es",
	"qa": "ar",
	"re": "fr",
	"ro": "ro",
	"rs": "sr",
	"ru": "ru",
	"rw": "rw",
	"sa": "ar",
	"sb": "en",
	"sc": "en",
	"scotland": "en",
	"sd": "ar",
	"se": "sv",
	"sg": "en",
	"sh": "en",
	"si": "sl",
	"sk": "sk",
	"sl": "en",
	"sm": "it",
	"sn": "fr",
	"so": "so",
	"sr": "nl",
	"ss": "en",
	"st": "pt",
	"sv": "es",
	"sx": "nl",
	"sy": "ar",
	"sz": "en",
	"ta": "en",
	"tc": "en",
	"td": "fr",
	"tg": "fr",
	"th": "th",
	"tj": "tg",
	"tk": "en",
	"tl": "pt",
	"tm": "tk",
	"tn": "ar",
	"to": "en",
	"tr": "tr",
	"tt": "en",
	"tv": "en",
	"tw": "zh-TW",
	"tz": "sw",
	"ua": "uk",
	"ug": "en",
	"us": "en",
	"uy": "es",
	"uz": "uz",
	"va": "it",
	"vc": "en",
	"ve": "es",
	"vg": "en",
	"vi": "en",
	"vn": "vi",
	"wales": "cy",
	"ws": "sm",
	"xk": "sq",
	"ye": "ar",
	"yt": "fr",
	"za": "af",
	"zm": "en",
	"zw": "en",
}
