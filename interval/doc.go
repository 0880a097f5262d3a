/*Package interval implements interval-union operations in a manner optimized
  for sets of genomic coordinates represented by BED-like files, plus the
  linear (absolute) coordinate space used to treat a multi-chromosome genome
  as a single axis.
  (Note the 'union'.  Overlapping and touching intervals are merged, not
  tracked separately.)
  Per-chromosome positions fit in a PosType, which is currently defined as
  int32 since that's what BAM files are limited to; absolute positions are
  AbsPos (int64) since a whole genome does not fit in 31 bits.
*/
package interval
