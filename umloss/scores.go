package umloss

import "github.com/katalvlaran/ultrametric/core"

// forwardScores snapshots, for every edge j, the running moment sums of
// ratioNeg at the moment the window boundary dist(j) < dist(i) - alpha
// is first crossed, so scoresA/B/C[j] hold the sums over exactly the
// edges processed before that crossing. Sortedness makes the trailing
// index j monotone, which is what turns the all-pairs margin comparison
// into one linear scan.
//
// scoresA accumulates ratioNeg, scoresB dist·ratioNeg and
// scoresC dist²·ratioNeg. The strict `<` boundary is load-bearing: the
// gradient's self-correction terms assume it.
func forwardScores(edges []core.Edge, ratioNeg []float64, alpha float64, scoresA, scoresB, scoresC []float64) {
	m := len(edges)
	var scoreA, scoreB, scoreC float64

	// Trailing edge index, follows i such that dist(j) < dist(i) - alpha.
	j := 0
	for i := 0; i < m; i++ {
		dist := edges[i].Dist

		// Snapshot every trailing edge that falls out of the window.
		for edges[j].Dist < dist-alpha {
			scoresA[j] = scoreA
			scoresB[j] = scoreB
			scoresC[j] = scoreC
			j++
		}

		// Fold edge i into the running sums.
		scoreA += ratioNeg[i]
		scoreB += dist * ratioNeg[i]
		scoreC += dist * dist * ratioNeg[i]
	}

	// Flush trailing edges that never crossed the boundary.
	for ; j < m; j++ {
		scoresA[j] = scoreA
		scoresB[j] = scoreB
		scoresC[j] = scoreC
	}
}

// backwardScores is the descending mirror of forwardScores: it
// accumulates ratioPos (scoresD) and dist·ratioPos (scoresE) from the
// largest distance down, snapshotting trailing edges while
// dist(j) > dist(i) + alpha. The strict `>` boundary mirrors the
// forward pass and feeds the same self-correction terms.
func backwardScores(edges []core.Edge, ratioPos []float64, alpha float64, scoresD, scoresE []float64) {
	m := len(edges)
	if m == 0 {
		return
	}
	var scoreD, scoreE float64

	// Trailing edge index, follows i such that dist(j) > dist(i) + alpha.
	j := m - 1
	for i := m - 1; i >= 0; i-- {
		dist := edges[i].Dist

		for edges[j].Dist > dist+alpha {
			scoresD[j] = scoreD
			scoresE[j] = scoreE
			j--
		}

		scoreD += ratioPos[i]
		scoreE += dist * ratioPos[i]
	}

	for ; j >= 0; j-- {
		scoresD[j] = scoreD
		scoresE[j] = scoreE
	}
}
