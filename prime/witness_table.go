package prime

// witnessBases is a fixed set of Miller-Rabin bases that is deterministically
// sufficient: a number that passes the strong probable-prime test against
// every base in this list is prime, for every n < 318,665,857,834,031,151,167,461
// (Sorenson & Webster 2015), which comfortably
// covers the full uint64 range this package operates over.
//
// An earlier revision of this package picked a single second witness per n
// via an 18-bit hash into a synthetically generated table, standing in for
// the externally published FJ64_262K witness table (whose exact 262144
// entries are the product of an offline exhaustive search this package does
// not have access to). That synthetic table was unvalidated and produced at
// least one false "prime" verdict (90751 = 151*601, a base-2 strong
// pseudoprime for which the synthetic table's hash-selected second witness
// also failed to detect compositeness). Rather than gamble on a second
// unvalidated table, IsPrime tests every base below, which is provably
// sufficient and needs no external data.
var witnessBases = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}
