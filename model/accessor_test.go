package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

func testRegistry() *Registry {
	return BuildRegistry(&Description{
		ModelName: "TestModel",
		Variables: []VariableDescriptor{
			{Name: "altitude", Reference: 1, Type: TypeReal},
			{Name: "gear_count", Reference: 2, Type: TypeInteger},
			{Name: "callsign", Reference: 3, Type: TypeString},
			{Name: "armed", Reference: 4, Type: TypeBoolean},
			{Name: "power_cmd", Reference: 5, Type: TypeReal,
				Dimensions: []int{4}},
		},
	})
}

var _ = Describe("Accessor", func() {
	var (
		mockCtrl *gomock.Controller
		instance *MockInstance
		accessor *Accessor
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		instance = NewMockInstance(mockCtrl)
		accessor = NewAccessor(testRegistry(), instance,
			Protocol{Version: ProtocolVersion3, SupportsArrays: true})
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should set a scalar real from a raw document value", func() {
		instance.EXPECT().
			SetFloat64(ValueRef(1), []float64{123.5}).
			Return(nil)

		Expect(accessor.Set("altitude", 123.5)).To(Succeed())
	})

	It("should widen an integer literal for a real variable", func() {
		instance.EXPECT().
			SetFloat64(ValueRef(1), []float64{42}).
			Return(nil)

		Expect(accessor.Set("altitude", int64(42))).To(Succeed())
	})

	It("should reject a fractional literal for an integer variable", func() {
		err := accessor.Set("gear_count", 1.5)

		Expect(err).To(HaveOccurred())
	})

	It("should set string and boolean variables", func() {
		instance.EXPECT().
			SetString(ValueRef(3), []string{"N123AB"}).
			Return(nil)
		instance.EXPECT().
			SetBoolean(ValueRef(4), []bool{true}).
			Return(nil)

		Expect(accessor.Set("callsign", "N123AB")).To(Succeed())
		Expect(accessor.Set("armed", true)).To(Succeed())
	})

	It("should set an array variable element by element", func() {
		instance.EXPECT().
			SetFloat64(ValueRef(5), []float64{0.1, 0.2, 0.3, 0.4}).
			Return(nil)

		err := accessor.Set("power_cmd", []any{0.1, 0.2, 0.3, 0.4})

		Expect(err).To(Succeed())
	})

	It("should reject a value whose shape disagrees with the registry",
		func() {
			err := accessor.Set("power_cmd", []any{0.1, 0.2})

			Expect(err).To(BeAssignableToTypeOf(&ConfigError{}))
		})

	It("should report unknown variables", func() {
		err := accessor.Set("no_such_variable", 1.0)

		Expect(err).To(BeAssignableToTypeOf(&UnknownVariableError{}))
	})

	It("should get a scalar using the registry's recorded type", func() {
		instance.EXPECT().
			GetFloat64(ValueRef(1), 1).
			Return([]float64{99.25}, nil)

		v, err := accessor.Get("altitude")

		Expect(err).To(Succeed())
		Expect(v.IsScalar()).To(BeTrue())
		Expect(v.Floats()).To(Equal([]float64{99.25}))
	})

	It("should get an array with the registry's element count", func() {
		instance.EXPECT().
			GetFloat64(ValueRef(5), 4).
			Return([]float64{1, 2, 3, 4}, nil)

		v, err := accessor.Get("power_cmd")

		Expect(err).To(Succeed())
		Expect(v.IsScalar()).To(BeFalse())
		Expect(v.Floats()).To(Equal([]float64{1, 2, 3, 4}))
	})

	Context("when the protocol does not support arrays", func() {
		BeforeEach(func() {
			accessor = NewAccessor(testRegistry(), instance,
				Protocol{
					Version:                 ProtocolVersion2,
					RequiresExperimentSetup: true,
				})
		})

		It("should still access scalars", func() {
			instance.EXPECT().
				SetFloat64(ValueRef(1), []float64{1.0}).
				Return(nil)

			Expect(accessor.Set("altitude", 1.0)).To(Succeed())
		})

		It("should refuse to set an array variable", func() {
			err := accessor.Set("power_cmd", []any{1.0, 2.0, 3.0, 4.0})

			Expect(err).To(BeAssignableToTypeOf(&CapabilityError{}))
		})

		It("should refuse to get an array variable", func() {
			_, err := accessor.Get("power_cmd")

			Expect(err).To(BeAssignableToTypeOf(&CapabilityError{}))
		})
	})
})
