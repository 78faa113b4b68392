// Package ode implements explicit Runge-Kutta methods,
// https://en.wikipedia.org/wiki/Runge–Kutta_methods, for the fixed-step
// integration of differentiable systems. The model packages use it to
// compute matrix exponentials by integrating the variational system.
package ode

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// DifferentiableSystem is anything with a state derivative.
type DifferentiableSystem interface {
	Derivative(t float64, state mat.Vector) mat.Vector
}

// RungeKutta holds the butcherTableau which describes the Runge-Kutta
// method.
type RungeKutta struct {
	Description butcherTableau
}

// butcherTableau describes the approximate solution, see
// https://en.wikipedia.org/wiki/Runge–Kutta_methods.
type butcherTableau struct {
	stages           int
	weights          []float64
	nodes            []float64
	rungeKuttaMatrix [][]float64
}

// NewRK4 returns a fourth order Runge-Kutta object.
func NewRK4() *RungeKutta {
	var temp butcherTableau
	temp.stages = 4
	temp.nodes = []float64{0, 1. / 2., 1. / 2., 1}
	temp.weights = []float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 2.},
		{0, 1. / 2.},
		{0, 0, 1.},
	}
	return &RungeKutta{temp}
}

// NewEulerMethod returns a Runge-Kutta that does the Euler method.
func NewEulerMethod() *RungeKutta {
	var temp butcherTableau
	temp.stages = 1
	temp.nodes = []float64{0}
	temp.weights = []float64{1}
	temp.rungeKuttaMatrix = [][]float64{nil}
	return &RungeKutta{temp}
}

// Integrate advances value from t = from to t = to in the given number of
// fixed steps. The result is written back into value.
func (rk RungeKutta) Integrate(from, to float64, steps int, value *mat.VecDense, system DifferentiableSystem) error {
	if steps < 1 {
		return errors.New("at least one integration step is required")
	}
	h := (to - from) / float64(steps)
	for step := 0; step < steps; step++ {
		rk.step(from+float64(step)*h, h, value, system)
	}
	return nil
}

// IntegrateMatrix integrates every column of value as an independent
// initial state, concurrently. The result is written back into value.
func (rk RungeKutta) IntegrateMatrix(from, to float64, steps int, value *mat.Dense, system DifferentiableSystem) error {
	if steps < 1 {
		return errors.New("at least one integration step is required")
	}
	M, N := value.Dims()

	var wg sync.WaitGroup
	wg.Add(N)

	columns := make([]*mat.VecDense, N)
	for column := 0; column < N; column++ {
		state := mat.NewVecDense(M, nil)
		state.CopyVec(value.ColView(column))
		columns[column] = state
		go func() {
			defer wg.Done()
			// steps is validated above; Integrate cannot fail here.
			_ = rk.Integrate(from, to, steps, state, system)
		}()
	}
	wg.Wait()

	for column := 0; column < N; column++ {
		value.SetCol(column, columns[column].RawVector().Data)
	}
	return nil
}

// step advances value by a single step of length h starting at t = from,
// combining the derivative points according to the Butcher tableau.
func (rk RungeKutta) step(from, h float64, value *mat.VecDense, system DifferentiableSystem) {
	M := value.Len()
	K := make([]mat.Vector, rk.Description.stages)
	tempV := mat.NewVecDense(M, nil)

	for index := range K {
		tempV.CopyVec(value)
		for index2, a := range rk.Description.rungeKuttaMatrix[index] {
			tempV.AddScaledVec(tempV, h*a, K[index2])
		}
		K[index] = system.Derivative(from+h*rk.Description.nodes[index], tempV)
	}
	for index, w := range rk.Description.weights {
		value.AddScaledVec(value, h*w, K[index])
	}
}
