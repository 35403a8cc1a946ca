// Package geodetic parses loosely formatted latitude/longitude strings and
// renders them as decimal degrees, degrees-minutes or degrees-minutes-seconds.
//
// Parsing is a tiered pipeline: the input is tokenized into a latitude and a
// longitude segment, each segment is split into numeric components, the
// components are validated and, only when validation fails, the raw segment
// text is re-examined for unbroken runs such as "341230". A coordinate that
// cannot be normalized is degraded rather than rejected: every render returns
// the original input.
package geodetic
