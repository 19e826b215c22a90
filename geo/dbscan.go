// Package geo clusters pollution measurements the way the PostGIS
// ST_ClusterDBSCAN window function would, but in-process, so the service does
// not require a spatial database extension.
package geo

import (
	"math"
)

type Point struct {
	ID        uint
	Longitude float64
	Latitude  float64
	Value     float64
}

// Cluster is one DBSCAN cluster: its centroid, the arithmetic mean of the
// member values and the member count.
type Cluster struct {
	ClusterID    int     `json:"cluster_id"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	PointCount   int     `json:"nb_points"`
	AvgPollution float64 `json:"avg_pollution"`
}

const (
	labelUndefined = 0
	labelNoise     = -1
)

// ClusterDBSCAN partitions points into density-based clusters. eps is the
// neighborhood radius in coordinate-degree units, minPoints the neighbor
// count (the point itself included) required for a core point. Points
// reachable from no core point are noise and appear in no cluster.
func ClusterDBSCAN(points []Point, eps float64, minPoints int) []Cluster {
	if len(points) == 0 {
		return nil
	}

	labels := make([]int, len(points))
	clusterID := 0

	for i := range points {
		if labels[i] != labelUndefined {
			continue
		}
		neighbors := regionQuery(points, i, eps)
		if len(neighbors) < minPoints {
			labels[i] = labelNoise
			continue
		}

		clusterID++
		labels[i] = clusterID

		// Expand: seed set grows as new core points are reached.
		for k := 0; k < len(neighbors); k++ {
			j := neighbors[k]
			if labels[j] == labelNoise {
				labels[j] = clusterID // border point
				continue
			}
			if labels[j] != labelUndefined {
				continue
			}
			labels[j] = clusterID
			next := regionQuery(points, j, eps)
			if len(next) >= minPoints {
				neighbors = append(neighbors, next...)
			}
		}
	}

	if clusterID == 0 {
		return nil
	}

	clusters := make([]Cluster, clusterID)
	for i, p := range points {
		id := labels[i]
		if id == labelNoise {
			continue
		}
		c := &clusters[id-1]
		c.ClusterID = id - 1
		c.Longitude += p.Longitude
		c.Latitude += p.Latitude
		c.AvgPollution += p.Value
		c.PointCount++
	}
	for i := range clusters {
		n := float64(clusters[i].PointCount)
		clusters[i].Longitude /= n
		clusters[i].Latitude /= n
		clusters[i].AvgPollution /= n
	}

	return clusters
}

func regionQuery(points []Point, i int, eps float64) []int {
	var neighbors []int
	for j := range points {
		if distance(points[i], points[j]) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// Euclidean distance in coordinate space, matching ST_ClusterDBSCAN over raw
// lon/lat geometries.
func distance(a, b Point) float64 {
	dx := a.Longitude - b.Longitude
	dy := a.Latitude - b.Latitude
	return math.Sqrt(dx*dx + dy*dy)
}
