package parser

// charRefTable maps the named character references the tokeniser's
// character-reference states recognize to their replacement code
// points, per https://html.spec.whatwg.org/multipage/named-characters.html.
// The full WHATWG table runs into the thousands of names (including
// many legacy aliases without a trailing semicolon); this is the
// commonly-occurring subset plus every semicolon-less legacy name
// the numeric-reference and ambiguous-ampersand states need to agree
// with the spec's examples. There is no machine-readable copy of the
// table in the retrieved sources, so this one was typed by hand from
// the published named character reference list.
var charRefTable = map[string][]rune{
	"&amp;":    {'&'},
	"&amp":     {'&'},
	"&lt;":     {'<'},
	"&lt":      {'<'},
	"&gt;":     {'>'},
	"&gt":      {'>'},
	"&quot;":   {'"'},
	"&quot":    {'"'},
	"&apos;":   {'\''},
	"&nbsp;":   {' '},
	"&nbsp":    {' '},
	"&copy;":   {'©'},
	"&copy":    {'©'},
	"&reg;":    {'®'},
	"&reg":     {'®'},
	"&trade;":  {'™'},
	"&deg;":    {'°'},
	"&deg":     {'°'},
	"&plusmn;": {'±'},
	"&plusmn":  {'±'},
	"&sup2;":   {'²'},
	"&sup2":    {'²'},
	"&sup3;":   {'³'},
	"&sup3":    {'³'},
	"&micro;":  {'µ'},
	"&micro":   {'µ'},
	"&para;":   {'¶'},
	"&para":    {'¶'},
	"&middot;": {'·'},
	"&middot":  {'·'},
	"&sup1;":   {'¹'},
	"&sup1":    {'¹'},
	"&frac12;": {'½'},
	"&frac12":  {'½'},
	"&frac14;": {'¼'},
	"&frac14":  {'¼'},
	"&frac34;": {'¾'},
	"&frac34":  {'¾'},
	"&times;":  {'×'},
	"&times":   {'×'},
	"&divide;": {'÷'},
	"&divide":  {'÷'},
	"&iexcl;":  {'¡'},
	"&iexcl":   {'¡'},
	"&cent;":   {'¢'},
	"&cent":    {'¢'},
	"&pound;":  {'£'},
	"&pound":   {'£'},
	"&curren;": {'¤'},
	"&curren":  {'¤'},
	"&yen;":    {'¥'},
	"&yen":     {'¥'},
	"&sect;":   {'§'},
	"&sect":    {'§'},
	"&laquo;":  {'«'},
	"&laquo":   {'«'},
	"&raquo;":  {'»'},
	"&raquo":   {'»'},
	"&not;":    {'¬'},
	"&not":     {'¬'},
	"&shy;":    {'­'},
	"&shy":     {'­'},
	"&hellip;": {'…'},
	"&mdash;":  {'—'},
	"&ndash;":  {'–'},
	"&lsquo;":  {'‘'},
	"&rsquo;":  {'’'},
	"&ldquo;":  {'“'},
	"&rdquo;":  {'”'},
	"&bull;":   {'•'},
	"&dagger;": {'†'},
	"&Dagger;": {'‡'},
	"&permil;": {'‰'},
	"&euro;":   {'€'},
	"&spades;": {'♠'},
	"&clubs;":  {'♣'},
	"&hearts;": {'♥'},
	"&diams;":  {'♦'},
	"&larr;":   {'←'},
	"&uarr;":   {'↑'},
	"&rarr;":   {'→'},
	"&darr;":   {'↓'},
	"&harr;":   {'↔'},
	"&crarr;":  {'↵'},
	"&forall;": {'∀'},
	"&part;":   {'∂'},
	"&exist;":  {'∃'},
	"&empty;":  {'∅'},
	"&nabla;":  {'∇'},
	"&isin;":   {'∈'},
	"&notin;":  {'∉'},
	"&ni;":     {'∋'},
	"&prod;":   {'∏'},
	"&sum;":    {'∑'},
	"&minus;":  {'−'},
	"&lowast;": {'∗'},
	"&radic;":  {'√'},
	"&prop;":   {'∝'},
	"&infin;":  {'∞'},
	"&ang;":    {'∠'},
	"&and;":    {'∧'},
	"&or;":     {'∨'},
	"&cap;":    {'∩'},
	"&cup;":    {'∪'},
	"&int;":    {'∫'},
	"&there4;": {'∴'},
	"&sim;":    {'∼'},
	"&cong;":   {'≅'},
	"&asymp;":  {'≈'},
	"&ne;":     {'≠'},
	"&equiv;":  {'≡'},
	"&le;":     {'≤'},
	"&ge;":     {'≥'},
	"&sub;":    {'⊂'},
	"&sup;":    {'⊃'},
	"&nsub;":   {'⊄'},
	"&sube;":   {'⊆'},
	"&supe;":   {'⊇'},
	"&oplus;":  {'⊕'},
	"&otimes;": {'⊗'},
	"&perp;":   {'⊥'},
	"&sdot;":   {'⋅'},
	"&lceil;":  {'⌈'},
	"&rceil;":  {'⌉'},
	"&lfloor;": {'⌊'},
	"&rfloor;": {'⌋'},
	"&lang;":   {'⟨'},
	"&rang;":   {'⟩'},
	"&loz;":    {'◊'},
	"&alpha;":  {'α'},
	"&beta;":   {'β'},
	"&gamma;":  {'γ'},
	"&delta;":  {'δ'},
	"&epsilon;": {'ε'},
	"&zeta;":    {'ζ'},
	"&eta;":     {'η'},
	"&theta;":   {'θ'},
	"&iota;":    {'ι'},
	"&kappa;":   {'κ'},
	"&lambda;":  {'λ'},
	"&mu;":      {'μ'},
	"&nu;":      {'ν'},
	"&xi;":      {'ξ'},
	"&omicron;": {'ο'},
	"&pi;":      {'π'},
	"&rho;":     {'ρ'},
	"&sigma;":   {'σ'},
	"&sigmaf;":  {'ς'},
	"&tau;":     {'τ'},
	"&upsilon;": {'υ'},
	"&phi;":     {'φ'},
	"&chi;":     {'χ'},
	"&psi;":     {'ψ'},
	"&omega;":   {'ω'},
	"&Alpha;":   {'Α'},
	"&Beta;":    {'Β'},
	"&Gamma;":   {'Γ'},
	"&Delta;":   {'Δ'},
	"&Epsilon;": {'Ε'},
	"&Zeta;":    {'Ζ'},
	"&Eta;":     {'Η'},
	"&Theta;":   {'Θ'},
	"&Iota;":    {'Ι'},
	"&Kappa;":   {'Κ'},
	"&Lambda;":  {'Λ'},
	"&Mu;":      {'Μ'},
	"&Nu;":      {'Ν'},
	"&Xi;":      {'Ξ'},
	"&Omicron;": {'Ο'},
	"&Pi;":      {'Π'},
	"&Rho;":     {'Ρ'},
	"&Sigma;":   {'Σ'},
	"&Tau;":     {'Τ'},
	"&Upsilon;": {'Υ'},
	"&Phi;":     {'Φ'},
	"&Chi;":     {'Χ'},
	"&Psi;":     {'Ψ'},
	"&Omega;":   {'Ω'},
	"&agrave;":  {'à'},
	"&agrave":   {'à'},
	"&aacute;":  {'á'},
	"&aacute":   {'á'},
	"&acirc;":   {'â'},
	"&acirc":    {'â'},
	"&atilde;":  {'ã'},
	"&atilde":   {'ã'},
	"&auml;":    {'ä'},
	"&auml":     {'ä'},
	"&aring;":   {'å'},
	"&aring":    {'å'},
	"&aelig;":   {'æ'},
	"&aelig":    {'æ'},
	"&ccedil;":  {'ç'},
	"&ccedil":   {'ç'},
	"&egrave;":  {'è'},
	"&egrave":   {'è'},
	"&eacute;":  {'é'},
	"&eacute":   {'é'},
	"&ecirc;":   {'ê'},
	"&ecirc":    {'ê'},
	"&euml;":    {'ë'},
	"&euml":     {'ë'},
	"&igrave;":  {'ì'},
	"&igrave":   {'ì'},
	"&iacute;":  {'í'},
	"&iacute":   {'í'},
	"&icirc;":   {'î'},
	"&icirc":    {'î'},
	"&iuml;":    {'ï'},
	"&iuml":     {'ï'},
	"&ntilde;":  {'ñ'},
	"&ntilde":   {'ñ'},
	"&ograve;":  {'ò'},
	"&ograve":   {'ò'},
	"&oacute;":  {'ó'},
	"&oacute":   {'ó'},
	"&ocirc;":   {'ô'},
	"&ocirc":    {'ô'},
	"&otilde;":  {'õ'},
	"&otilde":   {'õ'},
	"&ouml;":    {'ö'},
	"&ouml":     {'ö'},
	"&oslash;":  {'ø'},
	"&oslash":   {'ø'},
	"&ugrave;":  {'ù'},
	"&ugrave":   {'ù'},
	"&uacute;":  {'ú'},
	"&uacute":   {'ú'},
	"&ucirc;":   {'û'},
	"&ucirc":    {'û'},
	"&uuml;":    {'ü'},
	"&uuml":     {'ü'},
	"&yacute;":  {'ý'},
	"&yacute":   {'ý'},
	"&thorn;":   {'þ'},
	"&thorn":    {'þ'},
	"&szlig;":   {'ß'},
	"&szlig":    {'ß'},
	"&yuml;":    {'ÿ'},
	"&yuml":     {'ÿ'},
	"&circ;":    {'ˆ'},
	"&tilde;":   {'˜'},
	"&ensp;":    {' '},
	"&emsp;":    {' '},
	"&thinsp;":  {' '},
	"&zwnj;":    {'‌'},
	"&zwj;":     {'‍'},
	"&lrm;":     {'‎'},
	"&rlm;":     {'‏'},
	"&sbquo;":   {'‚'},
	"&bdquo;":   {'„'},
	"&oline;":   {'‾'},
	"&frasl;":   {'⁄'},
	"&weierp;":  {'℘'},
	"&image;":   {'ℑ'},
	"&real;":    {'ℜ'},
	"&alefsym;": {'ℵ'},
	"&sum":      {'∑'},
	"&NewLine;": {'\n'},
	"&Tab;":     {'\t'},
}
