package zpk_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-control/control/zpk"
)

func ExampleCombine() {
	plant := zpk.New(nil, []complex128{-1}, 2)
	controller := zpk.New([]complex128{-3}, nil, 0.5)
	actuator := zpk.New(nil, []complex128{-2, -2}, 1)

	loop, err := zpk.Combine(plant, controller, actuator)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(loop)
	fmt.Printf("DC gain: %.2f\n", real(loop.DCGain()))
	// Output:
	// zeros=-3;poles=-1,-2,-2;gain=1
	// DC gain: 0.75
}

func ExampleCombine_invalidInput() {
	_, err := zpk.Combine(zpk.Identity(), nil, zpk.Identity())
	fmt.Println(errors.Is(err, zpk.ErrInvalidInput))
	fmt.Println(err)
	// Output:
	// true
	// zpk: invalid input: controller: model is nil
}

func ExampleParse() {
	m, err := zpk.Parse("zeros=;poles=-1+2i,-1-2i;gain=5")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.Order(), m.RelativeDegree())
	fmt.Println(m)
	// Output:
	// 2 2
	// zeros=;poles=(-1+2i),(-1-2i);gain=5
}

func ExampleModel_TransferFunction() {
	m := zpk.New(nil, []complex128{-1, -2}, 2)

	num, den, err := m.TransferFunction()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(num, den)
	// Output:
	// [2] [1 3 2]
}

func ExampleModel_MagnitudeDB() {
	lowpass := zpk.New(nil, []complex128{-10}, 10)

	for i, db := range lowpass.MagnitudeDB([]float64{1, 10, 100}) {
		fmt.Printf("%d: %+.1f dB\n", i, db)
	}
	// Output:
	// 0: -0.0 dB
	// 1: -3.0 dB
	// 2: -20.0 dB
}
