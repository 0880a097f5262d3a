/*Package selection picks the peaks of a binned genome-wide signal.

Input is a sequence of Bins, ordered and non-overlapping within each
chromosome.  A selection is a subsequence in which no two bins are closer than
an exclusion distance, chosen by one of three methods:

  PQ       greedy: repeatedly take the highest-scoring remaining bin whose
           exclusion window is still free.
  WIS      exact weighted interval scheduling: the maximum-total-score set of
           pairwise non-overlapping intervals, computed over a linear
           coordinate space spanning all chromosomes.
  MaxMean  greedy over bins ranked by the centered rolling maximum (ties
           broken by rolling mean); emitted scores are the window maxima.

Run is the end-to-end driver used by cmd/bio-binsel: it validates Opts, reads
the input, calls the Selector for the method and writes the selected rows.
*/
package selection
