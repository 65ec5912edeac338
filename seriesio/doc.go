// Package seriesio reads and writes series in a line-oriented text format and
// in JSON.
//
// Text format:
//
//	# comment
//	@poly x;y          polynomial argument slot (optionally x=c0,c1,... time evaluation)
//	@trig l            trigonometric argument slot
//	@key monomial      key kind: monomial | trig
//	@coeff rational    coefficient kind: double | integer | rational | nested
//	@inner double      scalar kind of nested coefficients
//	3/2|1;0            one term: coefficient | key
//	{1|1;0,-2|0;0}|1;c nested coefficient {cf|key,...} of a Poisson term
//
// Directives must precede the first term. Malformed term lines are skipped and
// returned as LineError values (and logged), so a partly damaged file still loads.
//
// The JSON form is
//
//	{"key":"monomial","coeff":"rational","args":{"poly":["x"],"trig":[]},
//	 "terms":[{"c":"1/2","k":"1"}]}
package seriesio
